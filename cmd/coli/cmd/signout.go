package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/coli-team/coli-web/internal/session"
	"github.com/coli-team/coli-web/internal/storage"
)

var signOutSessionFile string

var signOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Remove the saved terminal session",
	Long: `Remove the token and user written by "coli signup" from the session file.

Examples:
  coli signout
  coli signout --session-file ./session.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := sessionFilePath(signOutSessionFile)
		if err != nil {
			return err
		}
		return runSignOut(afero.NewOsFs(), path, cmd.OutOrStdout())
	},
}

func init() {
	signOutCmd.Flags().StringVar(&signOutSessionFile, "session-file", "", "session file (default ~/.coli/session.json)")
	rootCmd.AddCommand(signOutCmd)
}

// runSignOut clears the session stored in path on fs.
func runSignOut(fs afero.Fs, path string, out io.Writer) error {
	store := session.NewStoreWriter(storage.NewKVStore(fs, path))
	sess, ok, err := store.Load()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No saved session.")
		return nil
	}
	fmt.Fprintf(out, "Signed out %s.\n", sess.User.Name)
	return nil
}
