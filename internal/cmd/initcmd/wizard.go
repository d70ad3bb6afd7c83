package initcmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/huh"
)

// Wizard manages the interactive configuration wizard.
type Wizard struct {
	state      *WizardState
	outputPath string
}

// NewWizard creates a new wizard instance.
func NewWizard() *Wizard {
	return &Wizard{
		state: NewWizardState(),
	}
}

// SetOutputPath sets the output path (from command line flag).
func (w *Wizard) SetOutputPath(path string) {
	w.outputPath = path
	if path != "" {
		w.state.ConfigPath = path
	}
}

// Run executes the wizard flow.
func (w *Wizard) Run() error {
	// Setup signal handling for graceful Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		fmt.Println()
		fmt.Println(RenderWarning("Setup canceled by user"))
		os.Exit(0)
	}()

	// Print header
	fmt.Println()
	fmt.Println(RenderHeader())
	fmt.Println()

	// Step 1: Welcome and file configuration
	if err := w.runWelcomeForm(); err != nil {
		return w.handleError(err)
	}

	// Step 2: Check for existing file
	if err := w.handleExistingFile(); err != nil {
		return err
	}

	// Step 3: Audit configuration
	fmt.Println(RenderSection("Audit Configuration"))
	if err := w.runAuditForm(); err != nil {
		return w.handleError(err)
	}

	// Step 4: Collector configuration
	fmt.Println(RenderSection("Findings Collector"))
	if err := w.runReportForm(); err != nil {
		return w.handleError(err)
	}

	// Step 5: Target configuration (loop)
	fmt.Println(RenderSection("Targets to Audit"))
	if err := w.runTargetForms(); err != nil {
		return w.handleError(err)
	}

	// Step 6: Generate and validate config
	cfg, err := w.state.ToConfig()
	if err != nil {
		return w.handleError(fmt.Errorf("failed to create configuration: %w", err))
	}

	if err := cfg.Validate(); err != nil {
		return w.handleValidationError(err)
	}

	// Step 7: Write config file
	fmt.Println()
	if err := WriteConfig(cfg, w.state.ConfigPath); err != nil {
		return w.handleError(err)
	}

	// Step 8: Show success and next steps
	w.showSuccess()

	return nil
}

func (w *Wizard) runWelcomeForm() error {
	form := NewWelcomeForm(w.state)
	return form.Run()
}

func (w *Wizard) runAuditForm() error {
	form := NewAuditForm(w.state)
	return form.Run()
}

func (w *Wizard) runReportForm() error {
	form := NewReportForm(w.state)
	return form.Run()
}

func (w *Wizard) runTargetForms() error {
	targetNum := 1

	for {
		// Reset current target for new entry
		w.state.ResetCurrentTarget()

		// Run target form
		form := NewTargetForm(w.state, targetNum)
		if err := form.Run(); err != nil {
			return err
		}

		// Save the target
		w.state.SaveCurrentTarget()

		// Check if user wants to add more
		if !w.state.AddAnother {
			break
		}

		targetNum++
	}

	// Validate we have at least one target
	if len(w.state.Targets) == 0 {
		return fmt.Errorf("at least one target is required")
	}

	return nil
}

func (w *Wizard) handleExistingFile() error {
	if !FileExists(w.state.ConfigPath) {
		return nil
	}

	form := NewOverwriteConfirmForm(w.state, w.state.ConfigPath)
	if err := form.Run(); err != nil {
		return w.handleError(err)
	}

	if !w.state.OverwriteFile {
		fmt.Println(RenderWarning("Setup canceled: file already exists"))
		os.Exit(0)
	}

	return nil
}

func (w *Wizard) handleError(err error) error {
	if err == huh.ErrUserAborted {
		fmt.Println()
		fmt.Println(RenderWarning("Setup canceled"))
		os.Exit(0)
	}
	fmt.Println()
	fmt.Println(RenderError(err.Error()))
	return err
}

func (w *Wizard) handleValidationError(err error) error {
	fmt.Println()
	fmt.Println(RenderError("Configuration validation failed:"))
	fmt.Println(RenderError("  " + err.Error()))
	fmt.Println()
	fmt.Println(RenderInfo("Please run 'certaudit init' again with corrected values."))
	return err
}

func (w *Wizard) showSuccess() {
	fmt.Println()
	fmt.Println(RenderSuccess("Config written to " + w.state.ConfigPath))
	fmt.Println(RenderSuccess("Validated successfully"))
	fmt.Println()

	// Show summary
	fmt.Println(TitleStyle.Render("Configuration Summary:"))
	fmt.Println(MutedStyle.Render("  Targets:       ") + fmt.Sprintf("%d", len(w.state.Targets)))
	fmt.Println(MutedStyle.Render("  CA bundle:     ") + w.state.CAFile)
	fmt.Println(MutedStyle.Render("  Expiry warn:   ") + w.state.MinExpireDaysStr + " days")
	if w.state.ReportEnabled && w.state.ReportEndpoint != "" {
		fmt.Println(MutedStyle.Render("  Collector:     ") + w.state.ReportEndpoint)
	}
	fmt.Println()

	fmt.Println(TitleStyle.Render("Next steps:"))
	fmt.Println()
	fmt.Println("  To validate your config:")
	fmt.Println("    " + RenderCode("certaudit validate -c "+w.state.ConfigPath))
	fmt.Println()
	fmt.Println("  To run an audit:")
	fmt.Println("    " + RenderCode("certaudit scan -c "+w.state.ConfigPath))
	fmt.Println()
}

// RunNonInteractive runs the wizard in non-interactive mode using environment variables.
func RunNonInteractive(outputPath string) error {
	state := NewWizardState()
	state.ConfigPath = outputPath

	if caFile := os.Getenv("CERTAUDIT_CA_FILE"); caFile != "" {
		state.CAFile = caFile
	}

	if days := os.Getenv("CERTAUDIT_MIN_EXPIRE_DAYS"); days != "" {
		state.MinExpireDaysStr = days
	}

	if level := os.Getenv("CERTAUDIT_LOG_LEVEL"); level != "" {
		state.LogLevel = level
	}

	if endpoint := os.Getenv("CERTAUDIT_REPORT_ENDPOINT"); endpoint != "" {
		state.ReportEnabled = true
		state.ReportEndpoint = endpoint
	}

	// Parse targets from CERTAUDIT_TARGETS (comma-separated URLs)
	targetsEnv := os.Getenv("CERTAUDIT_TARGETS")
	if targetsEnv != "" {
		for _, raw := range strings.Split(targetsEnv, ",") {
			raw = strings.TrimSpace(raw)
			if raw != "" {
				state.Targets = append(state.Targets, TargetInput{URL: raw})
			}
		}
	}

	// Validate we have targets
	if len(state.Targets) == 0 {
		return fmt.Errorf("CERTAUDIT_TARGETS environment variable is required (comma-separated URLs)")
	}

	// Convert and validate
	cfg, err := state.ToConfig()
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	// Write config
	if err := WriteConfig(cfg, state.ConfigPath); err != nil {
		return err
	}

	fmt.Println(RenderSuccess("Config written to " + state.ConfigPath))
	return nil
}
