// Command server exposes the Klingon dictionary as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/decompose?word=<word>[&class=n|v]
//	GET  /api/lookup?q=<query>
//	GET  /api/parse?entry=<name:pos:attrs>
//
// Configuration is read from KLINGON_* environment variables; the -addr,
// -db and -import flags override them.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tlhingan-hol/klingon"
	"github.com/tlhingan-hol/klingon/store/sqlite"
)

// config is loaded from the environment.
type config struct {
	// Addr is the listen address.
	Addr string `env:"KLINGON_ADDR" envDefault:":8080"`
	// DBPath is the SQLite dictionary file.
	DBPath string `env:"KLINGON_DB_PATH" envDefault:"klingon.db"`
	// Dictionary is a YAML or line-format file imported into an empty
	// database at startup.
	Dictionary string `env:"KLINGON_DICTIONARY"`
	// CORSOrigins lists the origins allowed to call the API.
	CORSOrigins []string `env:"KLINGON_CORS_ORIGINS" envDefault:"*" envSeparator:","`
	// Debug enables debug logging.
	Debug bool `env:"KLINGON_DEBUG"`
}

// ---- JSON response types ------------------------------------------------

type candidateJSON struct {
	Class    string   `json:"class"`
	Display  string   `json:"display"`
	Stem     string   `json:"stem"`
	Prefix   string   `json:"prefix,omitempty"`
	Suffixes []string `json:"suffixes,omitempty"`
	Filter   string   `json:"filter"`
	Bare     bool     `json:"bare"`
}

type decomposeResponse struct {
	Word       string          `json:"word"`
	Candidates []candidateJSON `json:"candidates"`
}

type entryJSON struct {
	Name            string `json:"name"`
	FormattedName   string `json:"formatted_name"`
	PartOfSpeech    string `json:"part_of_speech"`
	RawPartOfSpeech string `json:"raw_part_of_speech,omitempty"`
	Transitivity    string `json:"transitivity,omitempty"`
	Homophone       int    `json:"homophone,omitempty"`
	SourceURL       string `json:"source_url,omitempty"`
	Indented        bool   `json:"indented,omitempty"`
}

type resultJSON struct {
	ID         int64          `json:"id"`
	Entry      entryJSON      `json:"entry"`
	Definition string         `json:"definition"`
	Links      []string       `json:"links,omitempty"`
	Analysis   *candidateJSON `json:"analysis,omitempty"`
}

type lookupResponse struct {
	Query   string       `json:"query"`
	Results []resultJSON `json:"results"`
}

type parseResponse struct {
	Entry       entryJSON `json:"entry"`
	Diagnostics []string  `json:"diagnostics,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toCandidateJSON(c klingon.WordCandidate) candidateJSON {
	return candidateJSON{
		Class:    c.Class().String(),
		Display:  c.Display(),
		Stem:     c.Stem(),
		Prefix:   c.DisplayPrefix(),
		Suffixes: c.DisplaySuffixes(),
		Filter:   c.FilterString(),
		Bare:     c.IsBare(),
	}
}

func toEntryJSON(e klingon.EntryDescriptor) entryJSON {
	out := entryJSON{
		Name:            e.Name,
		FormattedName:   e.FormattedEntryName(),
		PartOfSpeech:    e.SpecificPartOfSpeech(),
		RawPartOfSpeech: e.RawPartOfSpeech,
		Homophone:       e.Homophone,
		SourceURL:       e.SourceURL,
		Indented:        e.IsIndented(),
	}
	if e.IsVerb() && e.Transitivity != klingon.TransitivityUnknown {
		out.Transitivity = e.Transitivity.Description()
	}
	return out
}

func toResultJSON(r klingon.Result) resultJSON {
	out := resultJSON{
		ID:         r.Record.ID,
		Entry:      toEntryJSON(r.Entry),
		Definition: klingon.PlainDefinition(r.Record.Definition),
	}
	for _, link := range klingon.LinkedEntries(r.Record.Definition) {
		out.Links = append(out.Links, link.Name)
	}
	if r.Analysis != nil {
		a := toCandidateJSON(*r.Analysis)
		out.Analysis = &a
	}
	return out
}

// server holds the dependencies shared by the handlers.
type server struct {
	dict   *klingon.Dictionary
	logger *zap.Logger
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleDecompose() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := klingon.NormalizeQuery(r.URL.Query().Get("word"))
		if word == "" {
			s.writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		var (
			cands []klingon.WordCandidate
			err   error
		)
		if class := r.URL.Query().Get("class"); class != "" {
			c, perr := klingon.ParseWordClass(class)
			if perr != nil {
				s.writeError(w, http.StatusBadRequest, perr.Error())
				return
			}
			cands, err = klingon.Decompose(word, c)
		} else {
			cands, err = klingon.DecomposeAll(word)
		}
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		out := make([]candidateJSON, 0, len(cands))
		for _, c := range cands {
			out = append(out, toCandidateJSON(c))
		}
		s.writeJSON(w, http.StatusOK, decomposeResponse{Word: word, Candidates: out})
	}
}

func (s *server) handleLookup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query().Get("q")
		if klingon.NormalizeQuery(q) == "" {
			s.writeError(w, http.StatusBadRequest, "missing 'q' query parameter")
			return
		}

		results, err := s.dict.Lookup(r.Context(), q)
		if err != nil {
			s.logger.Error("lookup failed", zap.String("query", q), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		out := make([]resultJSON, 0, len(results))
		for _, res := range results {
			out = append(out, toResultJSON(res))
		}
		status := http.StatusOK
		if len(out) == 0 {
			status = http.StatusNotFound
		}
		s.writeJSON(w, status, lookupResponse{Query: q, Results: out})
	}
}

func (s *server) handleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		raw := r.URL.Query().Get("entry")
		if raw == "" {
			s.writeError(w, http.StatusBadRequest, "missing 'entry' query parameter")
			return
		}
		e, diags := klingon.ParseQuery(klingon.NormalizeQuery(raw))
		resp := parseResponse{Entry: toEntryJSON(e)}
		for _, d := range diags {
			resp.Diagnostics = append(resp.Diagnostics, d.Error())
		}
		s.writeJSON(w, http.StatusOK, resp)
	}
}

// newHandler wires the API routes behind CORS.
func newHandler(dict *klingon.Dictionary, origins []string, logger *zap.Logger) http.Handler {
	s := &server{dict: dict, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/decompose", s.handleDecompose())
	mux.HandleFunc("/api/lookup", s.handleLookup())
	mux.HandleFunc("/api/parse", s.handleParse())

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(mux)
}

// ---- main ---------------------------------------------------------------

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// openStore opens the SQLite dictionary and seeds an empty one from
// cfg.Dictionary.
func openStore(ctx context.Context, cfg config, logger *zap.Logger) (*sqlite.Store, error) {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if cfg.Dictionary == "" {
		return store, nil
	}
	n, err := store.Count(ctx)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if n > 0 {
		logger.Info("dictionary already populated", zap.Int("entries", n))
		return store, nil
	}
	records, err := klingon.LoadRecords(cfg.Dictionary)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	if err := store.Import(ctx, records); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("import dictionary: %w", err)
	}
	logger.Info("dictionary imported", zap.String("file", cfg.Dictionary), zap.Int("entries", len(records)))
	return store, nil
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	dict := klingon.New(store, klingon.WithLogger(logger.Named("dictionary")))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(dict, cfg.CORSOrigins, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("db", cfg.DBPath))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse env: %v\n", err)
		os.Exit(1)
	}
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the SQLite dictionary")
	flag.StringVar(&cfg.Dictionary, "import", cfg.Dictionary, "dictionary file imported into an empty database")
	flag.Parse()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", zap.Error(err))
		stop()
		os.Exit(1)
	}
}
