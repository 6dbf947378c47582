package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/verdict/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "verdict"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	workspaceFlagName = "workspace"
	suiteFlagName     = "suite"
	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	modeFlagName      = "mode"
	progressFlagName  = "progress"
	timeoutFlagName   = "timeout"
	parallelFlagName  = "parallel"
	shardFlagName     = "shard"
	noBuildFlagName   = "no-build"
	reportFlagName    = "report"

	workspaceKey    = "paths.workspace"
	buildspaceKey   = "paths.buildspace"
	testsDirKey     = "paths.tests"
	suitesKey       = "paths.suites"
	vmKey           = "build.vm"
	buildCommandKey = "build.command"
	modeKey         = "run.mode"
	progressKey     = "run.progress"
	timeoutKey      = "run.timeout"
	parallelKey     = "run.parallel"
	noBuildKey      = "run.no_build"
	reportKey       = "run.report"
	captureDirKey   = "run.capture_dir"

	defaultBuildspace = "."
	defaultTestsDir   = "test"
	defaultVM         = "shell"
	defaultMode       = "release"
	defaultTimeout    = 60
	defaultParallel   = 1

	envPrefix = "VERDICT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	// stderrLogFilename sends the log to stderr instead of a file.
	stderrLogFilename = "-"

	defaultLogFilename   = ".verdict.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(workspaceKey, "")
	viper.SetDefault(buildspaceKey, defaultBuildspace)
	viper.SetDefault(testsDirKey, defaultTestsDir)
	viper.SetDefault(suitesKey, []string{})
	viper.SetDefault(vmKey, defaultVM)
	viper.SetDefault(buildCommandKey, domain.DefaultBuildCommand)
	viper.SetDefault(modeKey, defaultMode)
	viper.SetDefault(progressKey, "")
	viper.SetDefault(timeoutKey, defaultTimeout)
	viper.SetDefault(parallelKey, defaultParallel)
	viper.SetDefault(noBuildKey, false)
	viper.SetDefault(reportKey, false)
	viper.SetDefault(captureDirKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info to a rotating file; if verbose is true it logs
// at Debug. A logPath of "-" logs to stderr instead.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	var handler slog.Handler

	if logPath == stderrLogFilename {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			NoColor:   !isatty.IsTerminal(os.Stderr.Fd()),
			AddSource: verbose,
			Level:     logLevel,
		})
	} else {
		logWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}

		handler = slog.NewTextHandler(logWriter, &slog.HandlerOptions{
			AddSource: true,
			Level:     logLevel,
		})
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
