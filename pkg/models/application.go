package models

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/mytrout/buildingblocks/internal/resources"
	"github.com/mytrout/buildingblocks/pkg/guard"
)

// Application describes the application being generated: who owns it and
// where its legal documents live.
type Application struct {
	applicationID         uuid.UUID
	name                  string
	companyName           string
	companyShortName      string
	authors               string
	originalCopyrightYear int
	applicationURI        *url.URL
	licenseURI            *url.URL
	termsOfServiceURI     *url.URL
	privacyStatementURI   *url.URL
}

// ApplicationParams are the constructor arguments of an Application.
type ApplicationParams struct {
	ApplicationID         uuid.UUID
	Name                  string
	CompanyName           string
	CompanyShortName      string
	Authors               string
	OriginalCopyrightYear int
	ApplicationURI        *url.URL
	LicenseURI            *url.URL
	TermsOfServiceURI     *url.URL
	PrivacyStatementURI   *url.URL
}

// NewApplication creates an Application. Every URI must be absolute.
func NewApplication(applicationID uuid.UUID, name, companyName, companyShortName, authors string,
	originalCopyrightYear int, applicationURI, licenseURI, termsOfServiceURI, privacyStatementURI *url.URL,
) (*Application, error) {
	return buildApplication(ApplicationParams{
		ApplicationID:         applicationID,
		OriginalCopyrightYear: originalCopyrightYear,
		ApplicationURI:        applicationURI,
		LicenseURI:            licenseURI,
		TermsOfServiceURI:     termsOfServiceURI,
		PrivacyStatementURI:   privacyStatementURI,
	}, &name, &companyName, &companyShortName, &authors)
}

// NewApplicationFromParams creates an Application from p.
func NewApplicationFromParams(p ApplicationParams) (*Application, error) {
	return NewApplication(p.ApplicationID, p.Name, p.CompanyName, p.CompanyShortName, p.Authors,
		p.OriginalCopyrightYear, p.ApplicationURI, p.LicenseURI, p.TermsOfServiceURI, p.PrivacyStatementURI)
}

// buildApplication ignores the string members of p; they arrive as pointers
// so decoders can report absent values.
func buildApplication(p ApplicationParams, name, companyName, companyShortName, authors *string) (*Application, error) {
	if err := guard.NotEmptyID("applicationId", p.ApplicationID); err != nil {
		return nil, err
	}

	a := &Application{
		applicationID:         p.ApplicationID,
		originalCopyrightYear: p.OriginalCopyrightYear,
	}

	var err error
	if a.name, err = guard.RequiredString("name", name); err != nil {
		return nil, err
	}
	if a.companyName, err = guard.RequiredString("companyName", companyName); err != nil {
		return nil, err
	}
	if a.companyShortName, err = guard.RequiredString("companyShortName", companyShortName); err != nil {
		return nil, err
	}
	if a.authors, err = guard.RequiredString("authors", authors); err != nil {
		return nil, err
	}
	if a.applicationURI, err = absoluteURI("applicationUri", p.ApplicationURI); err != nil {
		return nil, err
	}
	if a.licenseURI, err = absoluteURI("licenseUri", p.LicenseURI); err != nil {
		return nil, err
	}
	if a.termsOfServiceURI, err = absoluteURI("termsOfServiceUri", p.TermsOfServiceURI); err != nil {
		return nil, err
	}
	if a.privacyStatementURI, err = absoluteURI("privacyStatementUri", p.PrivacyStatementURI); err != nil {
		return nil, err
	}
	return a, nil
}

func absoluteURI(param string, u *url.URL) (*url.URL, error) {
	if err := guard.NotNil(param, u == nil); err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, guard.OutOfRange(param, u.String(), resources.Format(resources.URIAbsolute, param))
	}
	return cloneURI(u), nil
}

// ApplicationID returns the identifier.
func (a *Application) ApplicationID() uuid.UUID { return a.applicationID }

// Name returns the application name.
func (a *Application) Name() string { return a.name }

// CompanyName returns the owning company's name.
func (a *Application) CompanyName() string { return a.companyName }

// CompanyShortName returns the owning company's short name.
func (a *Application) CompanyShortName() string { return a.companyShortName }

// Authors returns the authors line.
func (a *Application) Authors() string { return a.authors }

// OriginalCopyrightYear returns the first copyright year.
func (a *Application) OriginalCopyrightYear() int { return a.originalCopyrightYear }

// ApplicationURI returns a copy of the application URI.
func (a *Application) ApplicationURI() *url.URL { return cloneURI(a.applicationURI) }

// LicenseURI returns a copy of the license URI.
func (a *Application) LicenseURI() *url.URL { return cloneURI(a.licenseURI) }

// TermsOfServiceURI returns a copy of the terms of service URI.
func (a *Application) TermsOfServiceURI() *url.URL { return cloneURI(a.termsOfServiceURI) }

// PrivacyStatementURI returns a copy of the privacy statement URI.
func (a *Application) PrivacyStatementURI() *url.URL { return cloneURI(a.privacyStatementURI) }

// Params returns the constructor arguments.
func (a *Application) Params() ApplicationParams {
	return ApplicationParams{
		ApplicationID:         a.applicationID,
		Name:                  a.name,
		CompanyName:           a.companyName,
		CompanyShortName:      a.companyShortName,
		Authors:               a.authors,
		OriginalCopyrightYear: a.originalCopyrightYear,
		ApplicationURI:        a.ApplicationURI(),
		LicenseURI:            a.LicenseURI(),
		TermsOfServiceURI:     a.TermsOfServiceURI(),
		PrivacyStatementURI:   a.PrivacyStatementURI(),
	}
}

// With returns a new Application with edit applied to a copy of the arguments.
func (a *Application) With(edit func(*ApplicationParams)) (*Application, error) {
	p := a.Params()
	if edit != nil {
		edit(&p)
	}
	return NewApplicationFromParams(p)
}

// Equal reports structural equality. URIs compare by their string form.
func (a *Application) Equal(other *Application) bool {
	if a == nil || other == nil {
		return false
	}
	if a == other {
		return true
	}
	return a.applicationID == other.applicationID &&
		a.name == other.name &&
		a.companyName == other.companyName &&
		a.companyShortName == other.companyShortName &&
		a.authors == other.authors &&
		a.originalCopyrightYear == other.originalCopyrightYear &&
		sameURI(a.applicationURI, other.applicationURI) &&
		sameURI(a.licenseURI, other.licenseURI) &&
		sameURI(a.termsOfServiceURI, other.termsOfServiceURI) &&
		sameURI(a.privacyStatementURI, other.privacyStatementURI)
}

// Hash returns a hash consistent with Equal.
func (a *Application) Hash() uint64 {
	h := newHasher("Application")
	h.id(a.applicationID)
	h.str(a.name)
	h.str(a.companyName)
	h.str(a.companyShortName)
	h.str(a.authors)
	h.int(a.originalCopyrightYear)
	h.uri(a.applicationURI)
	h.uri(a.licenseURI)
	h.uri(a.termsOfServiceURI)
	h.uri(a.privacyStatementURI)
	return h.sum()
}
