package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"math/big"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"diamondkit.dev/pkg/diamondkit/internal/adapter"
	"diamondkit.dev/pkg/diamondkit/internal/domain"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/params"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "diamondkit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	configFlagName    = "config"
	artifactsFlagName = "artifacts"
	networkFlagName   = "network"
	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	reportFlagName    = "report"

	envPrefix = "DIAMONDKIT"

	artifactsDirKey   = "artifacts.dir"
	diamondNameKey    = "diamond.name"
	cutFacetKey       = "diamond.cut_facet"
	facetsKey         = "diamond.facets"
	initializersKey   = "diamond.initializers"
	validationKey     = "diamond.validation"
	constructorKey    = "diamond.constructor"
	networkNameKey    = "network.name"
	rpcURLKey         = "network.rpc_url"
	privateKeyKey     = "network.private_key"
	gasFeeCapKey      = "network.gas_fee_cap"
	gasTipCapKey      = "network.gas_tip_cap"
	gasLimitKey       = "network.gas_limit"
	networkTimeoutKey = "network.timeout"
	envFileKey        = "env.file"
	abiOutputKey      = "abi.output"
	abiDedupKey       = "abi.dedup"
	scanRootKey       = "scan.root"
	scanTargetKey     = "scan.target"
	scanExtensionsKey = "scan.extensions"
	scanExcludeKey    = "scan.exclude"
	resolveCacheKey   = "scan.resolve_cache_size"

	defaultArtifactsDir   = "artifacts/contracts"
	defaultDiamondName    = "FortuneNXTDiamond"
	defaultCutFacet       = "DiamondCutFacet"
	defaultValidation     = string(domain.ValidationStrict)
	defaultConstructor    = string(domain.ConstructorCut)
	defaultNetwork        = "localhost"
	defaultGasFeeCapGwei  = 2
	defaultGasTipCapGwei  = 1
	defaultGasLimit       = 6_000_000
	defaultNetworkTimeout = 600
	defaultEnvFile        = ".env"
	defaultABIOutput      = "abi/FortuneNXTDiamond.json"
	defaultABIDedup       = string(domain.DedupKindName)
	defaultScanRoot       = "."
	defaultScanTarget     = "diamond-helpers.js"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".diamondkit.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultFacets = []string{
	"AdminFacet",
	"IncomeFacet",
	"LevelIncomeFacet",
	"MagicPoolFacet",
	"MatrixFacet",
	"PriceFeedFacet",
	"PurchaseFacet",
	"RegistrationFacet",
	"UserViewFacet",
	"DiamondLoupeFacet",
}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Hardhat projects keep these unprefixed in .env.
	_ = viper.BindEnv(rpcURLKey, envPrefix+"_NETWORK_RPC_URL", "RPC_URL")
	_ = viper.BindEnv(privateKeyKey, envPrefix+"_NETWORK_PRIVATE_KEY", "PRIVATE_KEY")

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(artifactsDirKey, defaultArtifactsDir)
	viper.SetDefault(diamondNameKey, defaultDiamondName)
	viper.SetDefault(cutFacetKey, defaultCutFacet)
	viper.SetDefault(facetsKey, defaultFacets)
	viper.SetDefault(initializersKey, domain.DefaultInitializers)
	viper.SetDefault(validationKey, defaultValidation)
	viper.SetDefault(constructorKey, defaultConstructor)
	viper.SetDefault(networkNameKey, defaultNetwork)
	viper.SetDefault(rpcURLKey, "")
	viper.SetDefault(privateKeyKey, "")
	viper.SetDefault(gasFeeCapKey, defaultGasFeeCapGwei)
	viper.SetDefault(gasTipCapKey, defaultGasTipCapGwei)
	viper.SetDefault(gasLimitKey, defaultGasLimit)
	viper.SetDefault(networkTimeoutKey, defaultNetworkTimeout)
	viper.SetDefault(envFileKey, defaultEnvFile)
	viper.SetDefault(abiOutputKey, defaultABIOutput)
	viper.SetDefault(abiDedupKey, defaultABIDedup)
	viper.SetDefault(scanRootKey, defaultScanRoot)
	viper.SetDefault(scanTargetKey, defaultScanTarget)
	viper.SetDefault(scanExtensionsKey, domain.DefaultSourceExtensions)
	viper.SetDefault(scanExcludeKey, domain.DefaultScanExclude)
	viper.SetDefault(resolveCacheKey, domain.DefaultResolveCacheSize)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	_ = readConfig()
}

// readConfig loads the configured file; a missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
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
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func gwei(value int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(value), big.NewInt(params.GWei))
}

// chainConfig assembles the RPC and signing settings for the active network.
func chainConfig() adapter.ChainConfig {
	return adapter.ChainConfig{
		RPCURL:     viper.GetString(rpcURLKey),
		PrivateKey: viper.GetString(privateKeyKey),
		GasFeeCap:  gwei(viper.GetInt64(gasFeeCapKey)),
		GasTipCap:  gwei(viper.GetInt64(gasTipCapKey)),
		GasLimit:   viper.GetUint64(gasLimitKey),
		Timeout:    time.Duration(viper.GetInt64(networkTimeoutKey)) * time.Second,
	}
}

func networkArgs() domain.NetworkArgs {
	return domain.NetworkArgs{
		Network: viper.GetString(networkNameKey),
		Chain:   chainConfig(),
		EnvFile: m.Path(viper.GetString(envFileKey)),
	}
}

// planningArgs reads the facet selection; explicit names replace the configured list.
func planningArgs(names []string) (domain.PlanningArgs, error) {
	mode, err := domain.ParseValidationMode(viper.GetString(validationKey))
	if err != nil {
		return domain.PlanningArgs{}, err
	}

	facets := names
	if len(facets) == 0 {
		facets = viper.GetStringSlice(facetsKey)
	}

	return domain.PlanningArgs{
		ArtifactsDir: m.Path(viper.GetString(artifactsDirKey)),
		Facets:       facets,
		Validation:   mode,
		Initializers: viper.GetStringSlice(initializersKey),
	}, nil
}
