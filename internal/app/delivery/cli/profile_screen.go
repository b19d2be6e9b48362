package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thiagothgb/gostack-mobile-2020/internal/app/contracts"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/exceptions"
	"go.uber.org/zap"
)

type ProfileScreen struct {
	Log       *zap.Logger
	Profile   contracts.ProfileUsecase
	Navigator contracts.Navigator
	In        *bufio.Reader
	Out       io.Writer
}

func NewProfileScreen(log *zap.Logger, profileUsecase contracts.ProfileUsecase, navigator contracts.Navigator, in io.Reader, out io.Writer) *ProfileScreen {
	return &ProfileScreen{
		Log:       log,
		Profile:   profileUsecase,
		Navigator: navigator,
		In:        bufio.NewReader(in),
		Out:       out,
	}
}

func (s *ProfileScreen) Name() string {
	return constvars.ScreenProfile
}

func (s *ProfileScreen) Render(ctx context.Context, params map[string]interface{}) error {
	s.Log.Info("ProfileScreen.Render called",
		zap.String(constvars.LoggingScreenKey, s.Name()))

	for {
		user, err := s.Profile.CurrentUser(ctx)
		if err != nil {
			RenderAlert(s.Out, err)
			s.Navigator.GoBack()
			return nil
		}

		fmt.Fprintf(s.Out, "\nMy profile\nName: %s\nE-mail: %s\nAvatar: %s\n", user.Name, user.Email, user.AvatarURL)
		fmt.Fprint(s.Out, "[e]dit  [a]vatar  [b]ack > ")

		line, err := s.In.ReadString('\n')
		if err == io.EOF {
			s.Navigator.GoBack()
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "e":
			if done := s.editProfile(ctx, user.Name, user.Email); done {
				s.Navigator.GoBack()
				return nil
			}
		case "a":
			updated, err := s.Profile.UpdateAvatar(ctx)
			if err != nil {
				RenderAlert(s.Out, err)
				continue
			}
			if updated == nil {
				// Selection cancelled, nothing happened.
				continue
			}
			fmt.Fprintln(s.Out, "Avatar updated!")
		case "b":
			s.Navigator.GoBack()
			return nil
		}
	}
}

// editProfile runs the form once. Returns true when the update went
// through and the screen should close, mirroring the mobile flow.
func (s *ProfileScreen) editProfile(ctx context.Context, currentName, currentEmail string) bool {
	request := &requests.UpdateProfile{
		Name:  s.prompt("Name", currentName),
		Email: s.prompt("E-mail", currentEmail),
	}
	request.OldPassword = s.prompt("Current password (empty to keep)", "")
	if request.OldPassword != "" {
		request.Password = s.prompt("New password", "")
		request.PasswordConfirmation = s.prompt("Confirm new password", "")
	}

	if _, err := s.Profile.Submit(ctx, request); err != nil {
		var custom *exceptions.CustomError
		if errors.As(err, &custom) && custom.Kind == exceptions.KindValidation {
			RenderFieldErrors(s.Out, custom.Fields)
			return false
		}
		RenderAlert(s.Out, err)
		return false
	}

	fmt.Fprintln(s.Out, "Profile updated successfully!")
	return true
}

func (s *ProfileScreen) prompt(label, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(s.Out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(s.Out, "%s: ", label)
	}
	line, err := s.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return defaultValue
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return defaultValue
	}
	return value
}
