// Public domain.

// Package ingestprog implements the necamingest command: it scans FITS
// files, translates their headers with the registered instrument
// translators, and records the results in the ingest registry.
package ingestprog

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/soniakeys/exit"

	"github.com/necam-obs/ingest/fitshdr"
	"github.com/necam-obs/ingest/necam"
	"github.com/necam-obs/ingest/registry"
	"github.com/necam-obs/ingest/translate"
)

const versionString = "necamingest version 0.1 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	cl := parseCommandLine()
	if cl.v {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	logger := newLogger(cl)

	cfg, err := necam.LoadIngestConfig(cl.cfgPath)
	if err != nil {
		exit.Log(err)
	}
	task, err := necam.NewParseTask(cfg)
	if err != nil {
		exit.Log(err)
	}
	reg, err := registry.Open(cl.regPath, cfg.RegistryConfig())
	if err != nil {
		exit.Log(err)
	}
	defer reg.Close()

	ctx := context.Background()
	if cl.list {
		listVisits(ctx, reg, cfg.Register.Visit)
		return
	}

	files := findFits(cl.args)
	if len(files) == 0 {
		exit.Log("no FITS files found")
	}

	// remainder of main constructs and starts all the concurrent parts
	// of the program.

	// prCh keeps processed results in submission order.  it is a buffered
	// channel so that a fast worker can drop off its result without
	// waiting for workers ahead of it.
	maxWorkers := cl.workers
	if maxWorkers < 1 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	prCh := make(chan chan result, maxWorkers*2)
	fileChSeq := make(chan *fileSeq)

	// dispatcher.  for each file, attach a return channel that works like
	// a ticket for picking up the translation result.  queue the file for
	// a worker and drop the ticket in the queue for recording.
	go func() {
		for _, path := range files {
			rch := make(chan result, 1)
			fileChSeq <- &fileSeq{path, rch}
			prCh <- rch
		}
		close(prCh)
	}()

	// start workers only as the dispatcher calls for them.  we may have
	// more cores than files.
	go func() {
		for n := 0; n < maxWorkers; n++ {
			f, ok := <-fileChSeq
			if !ok {
				return
			}
			go work(task, f, fileChSeq)
		}
	}()

	// registry writes stay on this goroutine; results arrive in
	// submission order through the ticket queue.
	var ingested, failed int
	for rch := range prCh {
		r := <-rch
		if r.err != nil {
			failed++
			logger.Error().Err(r.err).Str("file", r.path).Msg("translation failed")
			continue
		}
		if err := reg.Add(ctx, r.row); err != nil {
			failed++
			logger.Error().Err(err).Str("file", r.path).Msg("registry rejected row")
			continue
		}
		ingested++
		logger.Info().
			Str("file", r.path).
			Str("instrument", r.info.Instrument).
			Int("exposure", r.info.ExposureID).
			Str("detector", r.info.DetectorName).
			Str("filter", r.info.PhysicalFilter).
			Str("date_obs", r.info.DatetimeBegin.ISODate()).
			Msg("ingested")
	}
	logger.Info().Int("ingested", ingested).Int("failed", failed).Msg("done")
	if failed > 0 {
		os.Exit(1)
	}
}

type fileSeq struct {
	path string
	rch  chan result
}

type result struct {
	path string
	row  map[string]interface{}
	info *translate.ObservationInfo
	err  error
}

// worker process, translates files.
// the first file will be waiting in f.
// additional files are read from fileCh.
func work(task *necam.ParseTask, f *fileSeq, fileCh chan *fileSeq) {
	for ; ; f = <-fileCh {
		f.rch <- translateFile(task, f.path)
	}
}

func translateFile(task *necam.ParseTask, path string) result {
	r := result{path: path}
	h, err := fitshdr.ReadFile(path)
	if err != nil {
		r.err = err
		return r
	}
	spec, err := translate.Select(h)
	if err != nil {
		r.err = err
		return r
	}
	tr := spec.Translation(h)
	if r.info, r.err = tr.ObservationInfo(); r.err != nil {
		return r
	}
	r.row, r.err = task.Row(h)
	return r
}

func listVisits(ctx context.Context, reg *registry.Registry, keys []string) {
	visits, err := reg.Visits(ctx)
	if err != nil {
		exit.Log(err)
	}
	for _, v := range visits {
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = fmt.Sprint(v[key])
		}
		fmt.Println(strings.Join(parts, " "))
	}
}

type commandLine struct {
	cfgPath string // -c option
	regPath string // -r option
	workers int    // -j option
	quiet   bool   // -q option
	list    bool   // -l option
	v       bool   // -v option
	args    []string
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.cfgPath, "c", "", "")
	flag.StringVar(&cl.regPath, "r", "registry.sqlite3", "")
	flag.IntVar(&cl.workers, "j", 0, "")
	flag.BoolVar(&cl.quiet, "q", false, "")
	flag.BoolVar(&cl.list, "l", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: necamingest [options] <file or directory>...   ingest FITS files
       necamingest [options] -l                       list registered visits
       necamingest -h                                 display help
       necamingest -v                                 display version and copyright

Options:
       -c <config-file>     YAML overrides of the ingest configuration
       -r <registry-file>   registry database (default registry.sqlite3)
       -j <workers>         concurrent translations (default all cores)
       -q                   log errors only
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		cl.v = true
	case flag.NArg() == 0 && !cl.list:
		flag.Usage()
		os.Exit(1)
	}
	cl.args = flag.Args()
	return &cl
}

func newLogger(cl *commandLine) zerolog.Logger {
	level := zerolog.InfoLevel
	if cl.quiet {
		level = zerolog.ErrorLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().
		Timestamp().
		Str("service", "necamingest").
		Logger()
}

// findFits expands the command-line arguments to FITS file paths.
// Directories are walked; anything ending .fits or .fit is taken.
func findFits(args []string) []string {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			exit.Log(err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".fits", ".fit":
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			exit.Log(err)
		}
	}
	return files
}

func printHelp() {
	fmt.Println(`
Necamingest reads the primary headers of NeCam FITS images, translates them
to the standardized observation metadata schema, and records one row per
image in the SQLite ingest registry.  Input is any mix of FITS files and
directories to walk.  A second ingest of the same visit, detector and
filter is rejected by the registry's uniqueness constraint.

Config file sections (YAML, overriding the built-in NeCam defaults):
   parse.translation
   parse.translators
   register.visit
   register.unique
   register.columns

Registry columns:`)
	cfg := necam.DefaultIngestConfig()
	for _, col := range cfg.Register.Visit {
		fmt.Printf("   %-8s %s\n", col, cfg.Register.Columns[col])
	}
	fmt.Println(`
For full documentation:
   godoc github.com/necam-obs/ingest`)
}
