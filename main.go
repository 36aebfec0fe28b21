// Command vif2csv converts VIF capture files from vibration monitoring
// units into quoted CSV on stdout or a file, optionally archiving the
// decoded records into a sqlite database.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/vibra-data/vif2csv/internal/config"
	"github.com/vibra-data/vif2csv/internal/monitoring"
	"github.com/vibra-data/vif2csv/internal/version"
	"github.com/vibra-data/vif2csv/internal/vif"
	"github.com/vibra-data/vif2csv/internal/vifdb"
)

type cliFlags struct {
	fs *flag.FlagSet

	header  bool
	counter bool
	today   bool
	day     string
	long    bool
	stats   bool
	quiet   bool
	output  string
	dbPath  string
	cfgPath string
	version bool

	set map[string]bool
}

func parseFlags(args []string) (*cliFlags, error) {
	fl := &cliFlags{fs: flag.NewFlagSet("vif2csv", flag.ContinueOnError)}
	fl.fs.BoolVar(&fl.header, "header", false, "emit the two-line column header")
	fl.fs.BoolVar(&fl.counter, "counter", true, "include the device record counter column")
	fl.fs.BoolVar(&fl.today, "today", false, "only emit records stamped with today's date")
	fl.fs.StringVar(&fl.day, "day", "", "only emit records from this date (YYYY-MM-DD or YY-MM-DD)")
	fl.fs.BoolVar(&fl.long, "long", false, "emit values with extended precision")
	fl.fs.BoolVar(&fl.stats, "stats", false, "print per-file velocity statistics")
	fl.fs.BoolVar(&fl.quiet, "quiet", false, "suppress progress logging")
	fl.fs.StringVar(&fl.output, "o", "", "write CSV to this file instead of stdout")
	fl.fs.StringVar(&fl.dbPath, "db", "", "also archive records into this sqlite database")
	fl.fs.StringVar(&fl.cfgPath, "config", "", "read defaults from this YAML file")
	fl.fs.BoolVar(&fl.version, "version", false, "print the version and exit")
	if err := fl.fs.Parse(args); err != nil {
		return nil, err
	}
	fl.set = make(map[string]bool)
	fl.fs.Visit(func(f *flag.Flag) { fl.set[f.Name] = true })
	return fl, nil
}

// buildOptions layers the three option sources: built-in defaults, then
// the config file, then any flag given explicitly on the command line.
func buildOptions(fl *cliFlags, cfg *config.Config) vif.Options {
	opts := vif.Options{Header: fl.header, Counter: fl.counter, Today: fl.today, Long: fl.long, Stats: fl.stats}
	opts.Day = fl.day
	if cfg != nil {
		if cfg.Header != nil && !fl.set["header"] {
			opts.Header = *cfg.Header
		}
		if cfg.Counter != nil && !fl.set["counter"] {
			opts.Counter = *cfg.Counter
		}
		if cfg.Today != nil && !fl.set["today"] {
			opts.Today = *cfg.Today
		}
		if cfg.Long != nil && !fl.set["long"] {
			opts.Long = *cfg.Long
		}
		if cfg.Stats != nil && !fl.set["stats"] {
			opts.Stats = *cfg.Stats
		}
		if cfg.Day != "" && !fl.set["day"] {
			opts.Day = cfg.Day
		}
	}
	return opts
}

func main() {
	fl, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if fl.version {
		fmt.Println(version.String())
		return
	}
	if fl.quiet {
		monitoring.Mute()
	}

	var cfg *config.Config
	if fl.cfgPath != "" {
		cfg, err = config.Load(fl.cfgPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
	}

	opts := buildOptions(fl, cfg)
	if opts.Day != "" {
		if !vif.ValidDateFilter(opts.Day) {
			fmt.Fprintf(os.Stderr, "invalid date filter %q\n", opts.Day)
			os.Exit(2)
		}
		opts.Day = vif.NormalizeDateFilter(opts.Day)
		monitoring.Logf("set date filter to: %q", opts.Day)
	}

	output := fl.output
	if cfg != nil && output == "" {
		output = cfg.Output
	}
	dbPath := fl.dbPath
	if cfg != nil && dbPath == "" {
		dbPath = cfg.Database
	}

	if err := run(fl.fs.Args(), opts, output, dbPath); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(files []string, opts vif.Options, output, dbPath string) error {
	if len(files) == 0 {
		return fmt.Errorf("no input files")
	}

	var out io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	csv := vif.NewCSVSink(out, opts.Counter)
	sinks := []vif.RowSink{csv}

	if dbPath != "" {
		archive, err := vifdb.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer archive.Close()
		monitoring.Logf("archiving to %s as run %s", dbPath, archive.RunID())
		sinks = append(sinks, archive)
	}

	conv := vif.NewConverter(opts, sinks...)
	for _, name := range files {
		sum, err := conv.ConvertFile(name)
		if err != nil {
			log.Printf("convert %s: %v", name, err)
			continue
		}
		if opts.Stats && sum.Stats != nil {
			printStats(name, sum.Stats)
		}
	}

	if err := csv.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func printStats(name string, s *vif.VelocityStats) {
	fmt.Fprintf(os.Stderr, "%s: n=%d mean=%.4f stddev=%.4f max=%.4f\n",
		name, s.Count, s.Mean, s.StdDev, s.Max)
}
