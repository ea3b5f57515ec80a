package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/nfrund/sellerprofile/internal/domain"
	"github.com/nfrund/sellerprofile/internal/modules/profile/view"
	"github.com/nfrund/sellerprofile/internal/profileapi"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type fetchOptions struct {
	token   string
	apiURL  string
	timeout time.Duration
	asJSON  bool
}

func newFetchCmd() *cobra.Command {
	opts := &fetchOptions{}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a seller profile",
		Long: `Fetch calls the profile API with the given credential token and prints the
profile with the same fallbacks the page uses. Failures print their kind and
message and exit non-zero.

Examples:
  profilectl fetch --token abc --api https://api.example.com
  PROFILE_API_URL=https://api.example.com profilectl fetch --token abc --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.token, "token", os.Getenv("PROFILE_TOKEN"), "credential token (defaults to $PROFILE_TOKEN)")
	cmd.Flags().StringVar(&opts.apiURL, "api", os.Getenv("PROFILE_API_URL"), "profile API base URL (defaults to $PROFILE_API_URL)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func runFetch(cmd *cobra.Command, opts *fetchOptions) error {
	gateway := profileapi.New(opts.apiURL, opts.timeout)
	profile, err := gateway.FetchProfile(cmd.Context(), opts.token)
	if err != nil {
		pe := domain.AsProfileError(err)
		fmt.Fprintf(cmd.ErrOrStderr(), "error [%s]: %s\n", pe.Kind, pe.Message)
		if pe.AuthFailure() {
			fmt.Fprintln(cmd.ErrOrStderr(), "sign in again to get a fresh token")
		}
		return errors.New("fetch failed")
	}

	data := view.FromProfile(profile)
	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return printProfile(cmd.OutOrStdout(), data)
}

func printProfile(out io.Writer, data view.Data) error {
	title := cases.Title(language.English)
	rows := []struct{ label, value string }{
		{"full name", data.FullName},
		{"title", data.Title},
		{"email", data.Email},
		{"company name", data.CompanyName},
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", title.String(r.label), r.value)
	}
	return w.Flush()
}
