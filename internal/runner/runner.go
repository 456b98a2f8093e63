package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Output             string
	Report             string
	Verify             string
	Config             string
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Reconcile two columns of location ids by total distance and similarity score.`)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write result lines"),
		flagSet.StringVarP(&opts.Report, "report", "rp", "", "report file to write run summary in yaml format"),
		flagSet.StringVarP(&opts.Verify, "verify", "vr", "", "verify computed scores against an expected report file"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display pairdiff version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `pairdiff cli config file (default '$HOME/.config/pairdiff/config.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update pairdiff to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic pairdiff update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("pairdiff")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("pairdiff version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current pairdiff version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if opts.Verify != "" && !fileutil.FileExists(opts.Verify) {
		gologger.Fatal().Msgf("expected report %v does not exist", opts.Verify)
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
