// Command rentgen runs the bulk property import pipeline: read a CSV of
// listings with arbitrary column headers, map the columns onto the canonical
// schema, normalize the rows, generate a marketing description per property,
// and export the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"rentgen/pkg/export"
	"rentgen/pkg/generate"
	"rentgen/pkg/parser"
	"rentgen/pkg/report"
	"rentgen/pkg/schema"
	"rentgen/pkg/store"
)

// overrideFlags collects repeated -map flags, each "Source Column=field"
// (field "skip" removes an automatic mapping).
type overrideFlags []schema.Override

func (o *overrideFlags) String() string {
	parts := make([]string, 0, len(*o))
	for _, ov := range *o {
		parts = append(parts, fmt.Sprintf("%s=%s", ov.Column, ov.Field))
	}
	return strings.Join(parts, ",")
}

func (o *overrideFlags) Set(v string) error {
	col, field, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("expected COLUMN=field, got %q", v)
	}
	*o = append(*o, schema.Override{Column: col, Field: schema.Field(field)})
	return nil
}

func main() {
	var overrides overrideFlags
	input := flag.String("input", "", "CSV file of properties to import")
	templateOut := flag.String("template", "", "write the sample upload template to this path and exit")
	provider := flag.String("provider", "none", "text generation backend: anthropic, openai, or none (static template)")
	tone := flag.String("tone", "professional", "writing tone for generated descriptions")
	jsonOut := flag.String("json", "", "write results as JSON to this path")
	csvOut := flag.String("csv", "", "write results as CSV to this path")
	dbPath := flag.String("db", "", "also record the run in this SQLite database")
	workers := flag.Int("workers", 4, "row normalization workers")
	force := flag.Bool("force", false, "process rows even when required fields are unmapped")
	flag.Var(&overrides, "map", "manual column mapping COLUMN=field; repeatable; field \"skip\" unmaps")
	flag.Parse()

	_ = godotenv.Load()

	if *templateOut != "" {
		if err := writeTemplate(*templateOut); err != nil {
			log.Fatalf("[ERROR] write template: %v", err)
		}
		log.Printf("[INFO] wrote sample template to %s", *templateOut)
		return
	}

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("[ERROR] read input: %v", err)
	}
	table, err := parser.ReadCSV(data)
	if err != nil {
		log.Fatalf("[ERROR] parse %s: %v", *input, err)
	}
	log.Printf("[INFO] %s: %d columns, %d data rows", *input, len(table.Columns), len(table.Rows))
	for _, w := range table.Warnings {
		log.Printf("[WARN] row %d: %s", w.Row, w.Message)
	}

	mapping, unmatched := schema.AutoDetect(table.Columns)
	for _, p := range mapping.Pairs() {
		log.Printf("[INFO] mapped column %q -> %s", p.Source, p.Field)
	}
	for _, col := range unmatched {
		if f, ok := schema.Suggest(col); ok {
			log.Printf("[WARN] column %q not auto-mapped (did you mean %s? use -map %q=%s)", col, f, col, f)
		} else {
			log.Printf("[WARN] column %q not auto-mapped", col)
		}
	}

	mapping, err = schema.ApplyOverrides(mapping, overrides)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	if missing := schema.MissingRequired(mapping); len(missing) > 0 {
		for _, f := range missing {
			log.Printf("[WARN] required field %s has no mapped column", f)
		}
		if !*force {
			log.Fatalf("[ERROR] %d required fields unmapped; map them with -map or rerun with -force", len(missing))
		}
	}

	rep := report.RunParallel(table, mapping, unmatched, time.Now(), *workers)
	for _, w := range rep.Warnings {
		log.Printf("[WARN] %s", w.Error())
	}
	for _, rej := range rep.Rejected {
		log.Printf("[WARN] rejected %s", rej.Error())
	}
	log.Printf("[INFO] run %s: %d of %d rows normalized (%d rejected)", rep.RunID, rep.Stats.Produced, rep.Stats.RowsRead, rep.Stats.Rejected)
	if len(rep.Records) == 0 {
		log.Fatalf("[ERROR] no valid properties found in %s", *input)
	}

	cli, source, err := buildClient(*provider)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	ctx := context.Background()
	results := make([]generate.Result, 0, len(rep.Records))
	for i, rec := range rep.Records {
		log.Printf("[INFO] generating description %d of %d", i+1, len(rep.Records))
		start := time.Now()
		desc, genErr := generate.Describe(ctx, cli, rec, *tone)
		res := generate.Result{
			Record:      rec,
			Description: *desc,
			Source:      source,
			LatencyMS:   time.Since(start).Milliseconds(),
		}
		if genErr != nil {
			log.Printf("[WARN] %s generation failed (%v); used static template", source, genErr)
			res.Source = generate.SourceTemplate
		}
		results = append(results, res)
	}

	if *jsonOut != "" {
		if err := writeFile(*jsonOut, func(f *os.File) error {
			return export.WriteResultsJSON(f, rep.RunID, results)
		}); err != nil {
			log.Fatalf("[ERROR] write JSON results: %v", err)
		}
		log.Printf("[INFO] wrote %s", *jsonOut)
	}
	if *csvOut != "" {
		if err := writeFile(*csvOut, func(f *os.File) error {
			return export.WriteResultsCSV(f, results)
		}); err != nil {
			log.Fatalf("[ERROR] write CSV results: %v", err)
		}
		log.Printf("[INFO] wrote %s", *csvOut)
	}
	if *dbPath != "" {
		if err := persist(*dbPath, rep, results); err != nil {
			log.Fatalf("[ERROR] save to %s: %v", *dbPath, err)
		}
		log.Printf("[INFO] recorded run %s in %s", rep.RunID, *dbPath)
	}
	log.Printf("[INFO] generated descriptions for %d properties", len(results))
}

// buildClient resolves the generation backend. When the provider needs a key
// that is not in the environment and stdin is a terminal, the key is asked
// for without echo.
func buildClient(provider string) (generate.Client, string, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "none":
		return nil, generate.SourceTemplate, nil
	case "anthropic":
		promptKeyIfMissing("ANTHROPIC_API_KEY")
		cli, err := generate.NewAnthropicClient()
		if err != nil {
			return nil, "", err
		}
		return cli, generate.SourceAnthropic, nil
	case "openai":
		promptKeyIfMissing("OPENAI_API_KEY")
		cli, err := generate.NewOpenAIClient()
		if err != nil {
			return nil, "", err
		}
		return cli, generate.SourceOpenAI, nil
	}
	return nil, "", fmt.Errorf("unknown provider %q (want anthropic, openai, or none)", provider)
}

func promptKeyIfMissing(envVar string) {
	if os.Getenv(envVar) != "" {
		return
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: ", envVar)
	key, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil || len(key) == 0 {
		return
	}
	os.Setenv(envVar, strings.TrimSpace(string(key)))
}

func writeTemplate(path string) error {
	return writeFile(path, func(f *os.File) error {
		return export.WriteTemplateCSV(f, schema.SampleTemplate())
	})
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func persist(path string, rep *report.ImportReport, results []generate.Result) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.SaveRun(rep); err != nil {
		return err
	}
	return st.SaveResults(rep.RunID, results)
}
