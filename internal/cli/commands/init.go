package commands

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mytrout/buildingblocks/internal/cli/ui"
	"github.com/mytrout/buildingblocks/internal/document"
	"github.com/mytrout/buildingblocks/pkg/guard"
	"github.com/mytrout/buildingblocks/pkg/models"
)

// ask is swapped out by tests.
var ask = func(qs []*survey.Question, response interface{}) error {
	return survey.Ask(qs, response)
}

type initAnswers struct {
	Name                string `survey:"name"`
	CompanyName         string `survey:"companyName"`
	CompanyShortName    string `survey:"companyShortName"`
	Authors             string `survey:"authors"`
	Year                string `survey:"originalCopyrightYear"`
	ApplicationURI      string `survey:"applicationUri"`
	LicenseURI          string `survey:"licenseUri"`
	TermsOfServiceURI   string `survey:"termsOfServiceUri"`
	PrivacyStatementURI string `survey:"privacyStatementUri"`
}

func notBlank(param string) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		return guard.NotBlank(param, s)
	}
}

func absoluteURL(param string) survey.Validator {
	return func(ans interface{}) error {
		_, err := parseAbsolute(param, fmt.Sprint(ans))
		return err
	}
}

func copyrightYear(ans interface{}) error {
	_, err := strconv.Atoi(fmt.Sprint(ans))
	if err != nil {
		return fmt.Errorf("originalCopyrightYear must be a whole number")
	}
	return nil
}

func parseAbsolute(param, raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, guard.OutOfRange(param, raw, err.Error())
	}
	if !u.IsAbs() {
		return nil, guard.OutOfRange(param, raw, "must be an absolute URI")
	}
	return u, nil
}

// questions returns a prompt for every answer not already supplied.
func (a *initAnswers) questions() []*survey.Question {
	all := []struct {
		name, message, def, value string
		validate                  survey.Validator
	}{
		{"name", "Application name:", "", a.Name, notBlank("name")},
		{"companyName", "Company name:", "", a.CompanyName, notBlank("companyName")},
		{"companyShortName", "Company short name:", "", a.CompanyShortName, notBlank("companyShortName")},
		{"authors", "Authors:", "", a.Authors, notBlank("authors")},
		{"originalCopyrightYear", "Original copyright year:", strconv.Itoa(time.Now().Year()), a.Year, copyrightYear},
		{"applicationUri", "Application URI:", "", a.ApplicationURI, absoluteURL("applicationUri")},
		{"licenseUri", "License URI:", "", a.LicenseURI, absoluteURL("licenseUri")},
		{"termsOfServiceUri", "Terms of service URI:", "", a.TermsOfServiceURI, absoluteURL("termsOfServiceUri")},
		{"privacyStatementUri", "Privacy statement URI:", "", a.PrivacyStatementURI, absoluteURL("privacyStatementUri")},
	}

	var qs []*survey.Question
	for _, q := range all {
		if q.value != "" {
			continue
		}
		qs = append(qs, &survey.Question{
			Name:     q.name,
			Prompt:   &survey.Input{Message: q.message, Default: q.def},
			Validate: q.validate,
		})
	}
	return qs
}

// application builds the Application through its constructor so the
// document starts out valid.
func (a *initAnswers) application(id uuid.UUID) (*models.Application, error) {
	year, err := strconv.Atoi(a.Year)
	if err != nil {
		return nil, guard.OutOfRange("originalCopyrightYear", a.Year, "must be a whole number")
	}

	uris := make([]*url.URL, 4)
	for i, raw := range []struct{ param, value string }{
		{"applicationUri", a.ApplicationURI},
		{"licenseUri", a.LicenseURI},
		{"termsOfServiceUri", a.TermsOfServiceURI},
		{"privacyStatementUri", a.PrivacyStatementURI},
	} {
		if uris[i], err = parseAbsolute(raw.param, raw.value); err != nil {
			return nil, err
		}
	}

	return models.NewApplication(id, a.Name, a.CompanyName, a.CompanyShortName, a.Authors,
		year, uris[0], uris[1], uris[2], uris[3])
}

func newInitCommand(s *session) *cobra.Command {
	var (
		answers initAnswers
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Create a model document describing a new application",
		Long: `Create a model document holding just the application description. Values
not given as flags are asked for interactively.

The file defaults to model.path from buildingblocks.yml (model.yml).

Examples:
  bbmodel init
  bbmodel init ledger.yml --name Ledger --company "Example Corporation"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := s.cfg.Model.Path
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			}

			if qs := answers.questions(); len(qs) > 0 {
				if err := ask(qs, &answers); err != nil {
					return err
				}
			}

			app, err := answers.application(uuid.New())
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ModelError(path, err, s.colorOff()))
				return err
			}

			if err := document.WriteToFile(&document.Document{Application: app}, path); err != nil {
				return err
			}

			s.logger.Info("model document created", zap.String("file", path), zap.Stringer("applicationId", app.ApplicationID()))
			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created %s for %s", path, app.Name()), s.colorOff())
			fmt.Fprintf(cmd.OutOrStdout(), "  Next: bbmodel validate %s\n", path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&answers.Name, "name", "", "Application name")
	f.StringVar(&answers.CompanyName, "company", "", "Company name")
	f.StringVar(&answers.CompanyShortName, "company-short", "", "Company short name")
	f.StringVar(&answers.Authors, "authors", "", "Authors")
	f.StringVar(&answers.Year, "year", "", "Original copyright year")
	f.StringVar(&answers.ApplicationURI, "application-uri", "", "Application URI")
	f.StringVar(&answers.LicenseURI, "license-uri", "", "License URI")
	f.StringVar(&answers.TermsOfServiceURI, "terms-uri", "", "Terms of service URI")
	f.StringVar(&answers.PrivacyStatementURI, "privacy-uri", "", "Privacy statement URI")
	f.BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
