package initcmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/certaudit-io/certaudit/internal/target"
)

// ValidateConfigPath validates the output file path.
func ValidateConfigPath(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}

	// Check if directory exists or can be created
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				// Directory doesn't exist, it is created during write
				return nil
			}
			return fmt.Errorf("cannot access directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("'%s' is not a directory", dir)
		}
	}

	return nil
}

// ValidateTargetURL validates a target URL entry.
func ValidateTargetURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("target URL is required")
	}

	if _, err := target.Parse(raw); err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}

	return nil
}

// ValidateCAFile validates the CA bundle path.
func ValidateCAFile(path string) error {
	if path == "" {
		return fmt.Errorf("CA bundle path is required")
	}
	return nil
}

// ValidateExpireDays validates the expiry warning threshold.
func ValidateExpireDays(daysStr string) error {
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return fmt.Errorf("threshold must be a number")
	}

	if days < 0 {
		return fmt.Errorf("threshold must not be negative")
	}

	if days > 3650 {
		return fmt.Errorf("threshold must be at most 3650 days")
	}

	return nil
}

// ValidateTimeout validates a probe timeout string.
func ValidateTimeout(timeoutStr string) error {
	if timeoutStr == "" {
		return nil // Will use default
	}

	d, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return fmt.Errorf("timeout must be a duration like '10s'")
	}

	if d < time.Second {
		return fmt.Errorf("timeout must be at least 1 second")
	}

	return nil
}

// ValidateEndpoint validates the collector endpoint URL.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return nil // Reporting disabled
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("URL must use http or https")
	}

	if u.Host == "" {
		return fmt.Errorf("URL must include a host")
	}

	return nil
}
