// Package klingon analyses inflected Klingon words into a stem plus
// prefix, suffixes and rovers, parses the part-of-speech metadata of
// dictionary entries, and matches analyses against stored entries.
package klingon

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds the store queries issued by one Lookup.
const maxConcurrentLookups = 8

// Dictionary answers word lookups against a Store.
type Dictionary struct {
	// store is the exact-name record index.
	store Store
	// logger receives diagnostics from stored records and store failures.
	logger *zap.Logger
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dictionary) {
		if l != nil {
			d.logger = l
		}
	}
}

// New returns a Dictionary reading from store.
func New(store Store, opts ...Option) *Dictionary {
	d := &Dictionary{
		store:  store,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Result is a stored entry found by Lookup.
type Result struct {
	// Record is the stored row.
	Record Record
	// Entry is the parsed descriptor of Record.
	Entry EntryDescriptor
	// Analysis is the decomposition whose stem found the entry; nil when
	// the query named a part of speech and was looked up as given.
	Analysis *WordCandidate
}

// recordKey identifies a stored record by the name it was fetched under
// and its position in that result, so records without ids stay distinct.
type recordKey struct {
	name  string
	index int
}

// probe is one stem to look up and the descriptor its records must satisfy.
type probe struct {
	filter   EntryDescriptor
	analysis *WordCandidate
}

// Lookup finds the entries a query refers to. A query with a part of
// speech ("Qong:v") is matched as given. A bare word is decomposed as a
// noun and as a verb, and every candidate stem is looked up with the
// part-of-speech restriction its analysis implies. Results follow
// candidate order and then store order; each stored record appears once.
func (d *Dictionary) Lookup(ctx context.Context, query string) ([]Result, error) {
	q := NormalizeQuery(query)
	if q == "" {
		return nil, nil
	}
	qd, diags := ParseQuery(q)
	for _, diag := range diags {
		d.logger.Debug("query diagnostic", zap.String("query", q), zap.Error(diag))
	}

	probes, err := d.probes(qd)
	if err != nil {
		return nil, err
	}

	records, err := d.fetch(ctx, probes)
	if err != nil {
		return nil, err
	}

	var out []Result
	seen := make(map[recordKey]bool)
	for _, p := range probes {
		for i, r := range records[p.filter.Name] {
			key := recordKey{name: p.filter.Name, index: i}
			if seen[key] {
				continue
			}
			entry, diags := ParseRecord(r)
			for _, diag := range diags {
				d.logger.Warn("stored entry diagnostic", zap.Int64("id", r.ID), zap.Error(diag))
			}
			if !Satisfies(p.filter, entry) {
				continue
			}
			seen[key] = true
			out = append(out, Result{Record: r, Entry: entry, Analysis: p.analysis})
		}
	}
	d.logger.Debug("lookup",
		zap.String("query", q),
		zap.Int("probes", len(probes)),
		zap.Int("results", len(out)))
	return out, nil
}

func (d *Dictionary) probes(qd EntryDescriptor) ([]probe, error) {
	if qd.PartOfSpeech != POSUnknown || strings.ContainsRune(qd.Name, ' ') {
		return []probe{{filter: qd}}, nil
	}
	cands, err := DecomposeAll(qd.Name)
	if err != nil {
		return nil, fmt.Errorf("decompose %q: %w", qd.Name, err)
	}
	probes := make([]probe, 0, len(cands))
	for i := range cands {
		c := cands[i]
		filter, _ := ParseQuery(c.FilterString())
		probes = append(probes, probe{filter: filter, analysis: &c})
	}
	return probes, nil
}

// fetch queries the store once per distinct stem, concurrently.
func (d *Dictionary) fetch(ctx context.Context, probes []probe) (map[string][]Record, error) {
	var names []string
	index := make(map[string]int)
	for _, p := range probes {
		if _, ok := index[p.filter.Name]; ok {
			continue
		}
		index[p.filter.Name] = len(names)
		names = append(names, p.filter.Name)
	}

	found := make([][]Record, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			recs, err := d.store.Lookup(gctx, name)
			if err != nil {
				d.logger.Error("store lookup failed", zap.String("name", name), zap.Error(err))
				return fmt.Errorf("lookup %q: %w", name, err)
			}
			found[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]Record, len(names))
	for i, name := range names {
		out[name] = found[i]
	}
	return out, nil
}
