// Package convert runs complete Markdown-to-HTML conversions: read a
// source file, split its front matter, render the body, wrap it into a
// document and write the result.
package convert

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/andrewhowdencom/mdpress/internal/document"
	"github.com/andrewhowdencom/mdpress/internal/files"
	"github.com/andrewhowdencom/mdpress/internal/output"
	"github.com/andrewhowdencom/mdpress/internal/page"
	"github.com/andrewhowdencom/mdpress/internal/processor"
)

// Options configures a Converter.
type Options struct {
	// OutFile forces the output path for a single-file conversion.
	// Mutually exclusive with OutDir.
	OutFile string
	// OutDir relocates derived output paths into a directory.
	OutDir string
	// TemplatePath points at a custom document shell; empty selects the
	// built-in one.
	TemplatePath string
}

// Converter converts Markdown files to wrapped HTML documents.
type Converter struct {
	opts  Options
	stack processor.Stack

	tracer      trace.Tracer
	conversions metric.Int64Counter
}

// New creates a Converter.
func New(opts Options) (*Converter, error) {
	wrapper := document.New()
	if opts.TemplatePath != "" {
		var err error
		wrapper, err = document.NewFromFile(opts.TemplatePath)
		if err != nil {
			return nil, err
		}
	}

	conversions, err := otel.Meter("mdpress").Int64Counter("mdpress.conversions",
		metric.WithDescription("Completed conversion attempts, by outcome."))
	if err != nil {
		return nil, fmt.Errorf("creating conversion counter: %w", err)
	}

	return &Converter{
		opts: opts,
		stack: processor.Stack{
			processor.NewMarkdownProcessor(),
			processor.NewDocumentProcessor(wrapper),
		},
		tracer:      otel.Tracer("mdpress"),
		conversions: conversions,
	}, nil
}

// File converts a single Markdown file and returns the output path it
// wrote.
func (c *Converter) File(ctx context.Context, path string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "convert.file",
		trace.WithAttributes(attribute.String("input.path", path)))
	defer span.End()

	out, err := c.file(ctx, path)
	c.conversions.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", err == nil)))
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return out, nil
}

func (c *Converter) file(ctx context.Context, path string) (string, error) {
	src, err := files.Read(path)
	if err != nil {
		return "", err
	}

	p, err := page.Parse(path, src)
	if err != nil {
		return "", err
	}

	doc, err := c.stack.Process(p.Body, map[string]interface{}{"Title": p.Title})
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", path, err)
	}

	out := c.OutputPath(path)
	if err := files.Write(out, []byte(doc)); err != nil {
		return "", err
	}

	slog.Debug("converted", "input", path, "output", out)
	return out, nil
}

// Tree converts every Markdown file under root, which may also be a single
// file. It returns the paths written and the first error encountered, after
// attempting every file.
func (c *Converter) Tree(ctx context.Context, root string) ([]string, error) {
	inputs, err := Discover(root)
	if err != nil {
		return nil, err
	}

	var written []string
	var firstErr error
	for _, in := range inputs {
		out, err := c.File(ctx, in)
		if err != nil {
			slog.Error("conversion failed", "input", in, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		written = append(written, out)
	}
	return written, firstErr
}

// OutputPath reports where a conversion of path would be written, without
// converting anything.
func (c *Converter) OutputPath(path string) string {
	if c.opts.OutFile != "" {
		return c.opts.OutFile
	}
	return output.Derive(path, c.opts.OutDir)
}

// Discover resolves root to the list of Markdown files it covers: the file
// itself, or every *.md under a directory tree, in walk order.
func Discover(root string) ([]string, error) {
	info, err := files.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var inputs []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".md") {
			inputs = append(inputs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return inputs, nil
}
