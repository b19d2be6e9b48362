package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/thiagothgb/gostack-mobile-2020/internal/app/contracts"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
	"go.uber.org/zap"
)

type CreateAppointmentScreen struct {
	Log        *zap.Logger
	Scheduling contracts.SchedulingUsecase
	Navigator  contracts.Navigator
	In         *bufio.Reader
	Out        io.Writer
}

func NewCreateAppointmentScreen(log *zap.Logger, scheduling contracts.SchedulingUsecase, navigator contracts.Navigator, in io.Reader, out io.Writer) *CreateAppointmentScreen {
	return &CreateAppointmentScreen{
		Log:        log,
		Scheduling: scheduling,
		Navigator:  navigator,
		In:         bufio.NewReader(in),
		Out:        out,
	}
}

func (s *CreateAppointmentScreen) Name() string {
	return constvars.ScreenCreateAppointment
}

func (s *CreateAppointmentScreen) Render(ctx context.Context, params map[string]interface{}) error {
	s.Log.Info("CreateAppointmentScreen.Render called",
		zap.String(constvars.LoggingScreenKey, s.Name()))

	providers, err := s.Scheduling.LoadProviders(ctx)
	if err != nil {
		RenderAlert(s.Out, err)
		return nil
	}

	providerID, _ := params["provider_id"].(string)
	if providerID == "" && len(providers) > 0 {
		providerID = providers[0].ID
	}
	if err := s.Scheduling.SelectProvider(ctx, providerID); err != nil {
		RenderAlert(s.Out, err)
	}

	for {
		s.renderState()
		fmt.Fprint(s.Out, "[p <id>] provider  [d <yyyy-mm-dd>] date  [h <hour>] hour  [s] submit  [b] back > ")

		line, err := s.In.ReadString('\n')
		if err == io.EOF {
			s.Navigator.GoBack()
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "p":
			if len(fields) < 2 {
				continue
			}
			if err := s.Scheduling.SelectProvider(ctx, fields[1]); err != nil {
				RenderAlert(s.Out, err)
			}
		case "d":
			if len(fields) < 2 {
				continue
			}
			date, err := time.ParseInLocation("2006-01-02", fields[1], time.Local)
			if err != nil {
				fmt.Fprintln(s.Out, "Invalid date, use yyyy-mm-dd")
				continue
			}
			if err := s.Scheduling.SelectDate(ctx, date); err != nil {
				RenderAlert(s.Out, err)
			}
		case "h":
			if len(fields) < 2 {
				continue
			}
			hour, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintln(s.Out, "Invalid hour")
				continue
			}
			if err := s.Scheduling.SelectHour(hour); err != nil {
				RenderAlert(s.Out, err)
			}
		case "s":
			appointment, err := s.Scheduling.Submit(ctx)
			if err != nil {
				// Selection is untouched; the user may retry.
				RenderAlert(s.Out, err)
				continue
			}
			s.Navigator.Navigate(constvars.ScreenAppointmentCreated, map[string]interface{}{
				"date": appointment.Date,
			})
			return nil
		case "b":
			s.Navigator.GoBack()
			return nil
		}
	}
}

func (s *CreateAppointmentScreen) renderState() {
	selectedProvider, date, hour := s.Scheduling.Selection()

	fmt.Fprintln(s.Out, "\nProviders:")
	for _, provider := range s.Scheduling.Providers() {
		marker := " "
		if provider.ID == selectedProvider {
			marker = "*"
		}
		fmt.Fprintf(s.Out, " %s %s  %s\n", marker, provider.ID, provider.Name)
	}

	fmt.Fprintf(s.Out, "Date: %s\n", date.Format("2006-01-02"))

	schedule := s.Scheduling.Schedule()
	renderBucket(s.Out, "Morning", schedule.Morning, hour)
	renderBucket(s.Out, "Afternoon", schedule.Afternoon, hour)
	renderBucket(s.Out, "Night", schedule.Night, hour)
}

func renderBucket(w io.Writer, title string, options []responses.HourOption, selectedHour int) {
	fmt.Fprintf(w, "%s:", title)
	for _, option := range options {
		label := option.Label
		if !option.Available {
			label = "(" + label + ")"
		}
		if option.Hour == selectedHour {
			label = "[" + label + "]"
		}
		fmt.Fprintf(w, " %s", label)
	}
	fmt.Fprintln(w)
}
