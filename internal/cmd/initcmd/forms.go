package initcmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// NewWelcomeForm creates the welcome and file configuration form.
func NewWelcomeForm(state *WizardState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to CertAudit Setup!").
				Description("This wizard will help you create a configuration file for CertAudit.\n\n"+
					"You'll need:\n"+
					"  • The HTTPS URLs of the endpoints you want to audit\n"+
					"  • A PEM bundle of the CA certificates you trust"),

			huh.NewInput().
				Title("Config file path").
				Description("Where to save the configuration file").
				Placeholder("./certaudit.yaml").
				Value(&state.ConfigPath).
				Validate(ValidateConfigPath),
		),
	).WithTheme(CreateTheme())
}

// NewAuditForm creates the audit behavior form.
func NewAuditForm(state *WizardState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Audit Configuration").
				Description("Configure probe behavior"),

			huh.NewInput().
				Title("CA bundle path").
				Description("PEM file with the trusted root certificates").
				Placeholder("ca.pem").
				Value(&state.CAFile).
				Validate(ValidateCAFile),

			huh.NewInput().
				Title("Expiry warning threshold (days)").
				Description("Warn when a certificate expires in fewer days than this").
				Placeholder("30").
				Value(&state.MinExpireDaysStr).
				Validate(ValidateExpireDays),

			huh.NewInput().
				Title("Probe timeout").
				Description("Per-connection timeout (default: 10s)").
				Placeholder("10s").
				Value(&state.TimeoutStr).
				Validate(ValidateTimeout),

			huh.NewSelect[string]().
				Title("Concurrency").
				Description("How many targets to audit in parallel").
				Options(
					huh.NewOption("1 (sequential)", "1"),
					huh.NewOption("5", "5"),
					huh.NewOption("10 (recommended)", "10"),
					huh.NewOption("25", "25"),
				).
				Value(&state.ConcurrencyStr),

			huh.NewSelect[string]().
				Title("Log Level").
				Description("Logging verbosity").
				Options(
					huh.NewOption("Debug (verbose)", "debug"),
					huh.NewOption("Info (recommended)", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error (quiet)", "error"),
				).
				Value(&state.LogLevel),
		),
	).WithTheme(CreateTheme())
}

// NewReportForm creates the optional collector configuration form.
func NewReportForm(state *WizardState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Findings Collector").
				Description("Optionally submit findings to a collector endpoint after each run"),

			huh.NewConfirm().
				Title("Submit findings to a collector?").
				Value(&state.ReportEnabled).
				Affirmative("Yes").
				Negative("No"),

			huh.NewInput().
				Title("Collector endpoint").
				Description("Base URL of the collector (e.g., https://collector.example.com)").
				Placeholder("https://collector.example.com").
				Value(&state.ReportEndpoint).
				Validate(ValidateEndpoint),
		),
	).WithTheme(CreateTheme())
}

// NewTargetForm creates a target entry form.
func NewTargetForm(state *WizardState, targetNum int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("Target #%d", targetNum)).
				Description("Add an HTTPS endpoint to audit"),

			huh.NewInput().
				Title("Target URL").
				Description("The endpoint to audit (e.g., https://api.example.com)").
				Placeholder("https://api.example.com").
				Value(&state.CurrentTarget.URL).
				Validate(ValidateTargetURL),

			huh.NewConfirm().
				Title("Add another target?").
				Value(&state.AddAnother).
				Affirmative("Yes").
				Negative("No"),
		),
	).WithTheme(CreateTheme())
}

// NewOverwriteConfirmForm creates a form to confirm file overwrite.
func NewOverwriteConfirmForm(state *WizardState, path string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("File '%s' already exists. Overwrite?", path)).
				Description("The existing file will be replaced with the new configuration.").
				Value(&state.OverwriteFile).
				Affirmative("Yes, overwrite").
				Negative("No, cancel"),
		),
	).WithTheme(CreateTheme())
}
