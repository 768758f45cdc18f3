package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/coli-team/coli-web/internal/api"
	"github.com/coli-team/coli-web/internal/config"
	"github.com/coli-team/coli-web/internal/domain"
	"github.com/coli-team/coli-web/internal/logging"
	"github.com/coli-team/coli-web/internal/session"
	"github.com/coli-team/coli-web/internal/signup"
	"github.com/coli-team/coli-web/internal/storage"
)

// errRejected is returned when the form fails validation.
var errRejected = errors.New("sign-up form rejected")

type signUpOptions struct {
	name            string
	email           string
	profile         string
	password        string
	confirmPassword string
	sessionFile     string
	maxUploadBytes  int64
}

var signUpOpts signUpOptions

var signUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account from the terminal",
	Long: `Create a COLI account with the same rules as the web form.

The token and user are written to a JSON session file.

Examples:
  coli signup --name "Alice Liddell" --email alice@gmail.com \
    --profile ./me.png --password secret1 --confirm-password secret1`,
	RunE: runSignUpCmd,
}

func init() {
	f := signUpCmd.Flags()
	f.StringVar(&signUpOpts.name, "name", "", "full name")
	f.StringVar(&signUpOpts.email, "email", "", "email address")
	f.StringVar(&signUpOpts.profile, "profile", "", "path to the profile image")
	f.StringVar(&signUpOpts.password, "password", "", "password")
	f.StringVar(&signUpOpts.confirmPassword, "confirm-password", "", "password confirmation")
	f.StringVar(&signUpOpts.sessionFile, "session-file", "", "session file (default ~/.coli/session.json)")
	rootCmd.AddCommand(signUpCmd)
}

func runSignUpCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewClient()
	if err != nil {
		return err
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)

	opts := signUpOpts
	opts.maxUploadBytes = cfg.MaxUploadBytes
	if opts.sessionFile, err = sessionFilePath(opts.sessionFile); err != nil {
		return err
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	ctrl := signup.NewController(client, logger)
	return runSignUp(cmd.Context(), afero.NewOsFs(), ctrl, opts, cmd.OutOrStdout())
}

// sessionFilePath returns path, or ~/.coli/session.json when it is empty.
func sessionFilePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".coli", "session.json"), nil
}

// runSignUp drives the form controller once with the flag values and writes
// the resulting session to opts.sessionFile on fs.
func runSignUp(ctx context.Context, fs afero.Fs, ctrl *signup.Controller, opts signUpOptions, out io.Writer) error {
	var profile *domain.Upload
	if opts.profile != "" {
		up, err := storage.OpenUpload(fs, opts.profile, opts.maxUploadBytes)
		if err != nil {
			return err
		}
		profile = up
	}

	state := signup.Apply(signup.State{},
		signup.NameChanged{Value: opts.name},
		signup.EmailChanged{Value: opts.email},
		signup.ProfileChanged{Upload: profile},
		signup.PasswordChanged{Value: opts.password},
		signup.ConfirmPasswordChanged{Value: opts.confirmPassword},
	)

	writer := session.NewStoreWriter(storage.NewKVStore(fs, opts.sessionFile))
	state, err := ctrl.Submit(ctx, state, writer)
	if err != nil {
		return err
	}
	if state.Error.Active {
		fmt.Fprintf(out, "%s: %s\n", state.Error.Field, state.Error.Message)
		return errRejected
	}

	sess, _, err := writer.Load()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Signed up as %s. Session saved to %s\n", sess.User.Name, opts.sessionFile)
	return nil
}
