package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/thiagothgb/gostack-mobile-2020/internal/app/contracts"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"go.uber.org/zap"
)

type AppointmentCreatedScreen struct {
	Log       *zap.Logger
	Navigator contracts.Navigator
	In        *bufio.Reader
	Out       io.Writer
}

func NewAppointmentCreatedScreen(log *zap.Logger, navigator contracts.Navigator, in io.Reader, out io.Writer) *AppointmentCreatedScreen {
	return &AppointmentCreatedScreen{
		Log:       log,
		Navigator: navigator,
		In:        bufio.NewReader(in),
		Out:       out,
	}
}

func (s *AppointmentCreatedScreen) Name() string {
	return constvars.ScreenAppointmentCreated
}

func (s *AppointmentCreatedScreen) Render(ctx context.Context, params map[string]interface{}) error {
	s.Log.Info("AppointmentCreatedScreen.Render called",
		zap.String(constvars.LoggingScreenKey, s.Name()))

	date, _ := params["date"].(string)
	fmt.Fprintln(s.Out, "\nAppointment scheduled!")
	if date != "" {
		fmt.Fprintf(s.Out, "Booked for %s\n", date)
	}
	fmt.Fprint(s.Out, "Press enter to continue")
	s.In.ReadString('\n')

	s.Navigator.GoBack()
	return nil
}
