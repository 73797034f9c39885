package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Environment variables passed to extensions. They are also read by LoadConfig.
const (
	EnvPortfolio = "ESP_PORTFOLIO"
	EnvCurrency  = "ESP_CURRENCY"
	EnvLogLevel  = "ESP_LOG_LEVEL"
	EnvConfig    = "ESP_CONFIG"
)

// RunExtension attempts to find and execute an external esp-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "esp-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug().Str("extension", externalCmdName).Err(err).Msg("extension not found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the configuration in effect as environment variables.
func extensionEnv() []string {
	return []string{
		EnvPortfolio + "=" + config.Portfolio,
		EnvCurrency + "=" + config.Currency,
		EnvLogLevel + "=" + config.LogLevel,
		EnvConfig + "=" + *configFile,
	}
}
