package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/thiagothgb/gostack-mobile-2020/internal/app/config"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/delivery/cli"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/drivers/httpclient"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/drivers/logger"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/services/appointments"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/services/profile"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/services/providers"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/services/session"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	defer bootstrap.Shutdown()

	httpClient := httpclient.NewHTTPClient(driverConfig)
	sessionRepository := session.NewSessionFileRepository(internalConfig.Session.FilePath, log)

	providerClient := providers.NewProviderAPIClient(internalConfig.API.BaseURL, httpClient, sessionRepository, log)
	appointmentClient := appointments.NewAppointmentAPIClient(internalConfig.API.BaseURL, httpClient, sessionRepository, log)
	profileClient := profile.NewProfileAPIClient(internalConfig.API.BaseURL, httpClient, sessionRepository, log)

	schedulingUsecase := appointments.NewSchedulingUsecase(log, providerClient, appointmentClient, internalConfig)
	avatarPicker := cli.NewFileAvatarPicker(os.Stdin, os.Stdout)
	profileUsecase := profile.NewProfileUsecase(log, profileClient, sessionRepository, avatarPicker)

	navigator := cli.NewStackNavigator(log)
	navigator.Register(cli.NewCreateAppointmentScreen(log, schedulingUsecase, navigator, os.Stdin, os.Stdout))
	navigator.Register(cli.NewAppointmentCreatedScreen(log, navigator, os.Stdin, os.Stdout))
	navigator.Register(cli.NewProfileScreen(log, profileUsecase, navigator, os.Stdin, os.Stdout))

	ctx := context.Background()
	in := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("\nGoBarber  [1] book an appointment  [2] my profile  [q] quit > ")
		line, err := in.ReadString('\n')
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Error("Error reading input", zap.Error(err))
			return
		}

		switch strings.TrimSpace(line) {
		case "1":
			if err := navigator.Run(ctx, constvars.ScreenCreateAppointment, nil); err != nil {
				log.Error("Error running booking flow", zap.Error(err))
			}
		case "2":
			if err := navigator.Run(ctx, constvars.ScreenProfile, nil); err != nil {
				log.Error("Error running profile flow", zap.Error(err))
			}
		case "q":
			return
		}
	}
}
