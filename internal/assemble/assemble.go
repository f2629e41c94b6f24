// Package assemble merges the composed report sections into the
// user-supplied template document and writes the final PDF. The
// template is trusted for branding (cover page, reserved TOC page,
// header/footer); only its page structure is checked here.
package assemble

import (
	"fmt"
	"os"
	"path/filepath"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/raznan-ahamed/nessreport/internal/models"
)

// minTemplatePages is the structural contract: page 1 is the cover,
// page 2 is reserved for the table of contents. The TOC itself is
// populated by the user's document viewer, not here.
const minTemplatePages = 2

// Options configures one assembly run.
type Options struct {
	Title string // report title on the statistics page
	RunID string // echoed in the content page footer
}

// Assembler writes the final report document.
type Assembler struct {
	opts Options
}

// New creates an assembler.
func New(opts Options) *Assembler {
	if opts.Title == "" {
		opts.Title = "Vulnerability Assessment Report"
	}
	return &Assembler{opts: opts}
}

// CheckTemplate verifies the template document against the structural
// contract. This is a best-effort check, not full validation: the
// document must parse and expose at least the cover and TOC pages.
func (a *Assembler) CheckTemplate(path string) error {
	if err := pdfapi.ValidateFile(path, nil); err != nil {
		return &models.TemplateContractError{Path: path, Reason: fmt.Sprintf("not a readable PDF: %v", err)}
	}
	pages, err := pdfapi.PageCountFile(path)
	if err != nil {
		return &models.TemplateContractError{Path: path, Reason: fmt.Sprintf("cannot count pages: %v", err)}
	}
	if pages < minTemplatePages {
		return &models.TemplateContractError{
			Path:   path,
			Reason: fmt.Sprintf("expected at least %d pages (cover + TOC), found %d", minTemplatePages, pages),
		}
	}
	return nil
}

// Assemble builds the content pages from the sections, appends them
// after the template's reserved pages, and writes the result to
// outputPath. The write is as atomic as the filesystem allows: the
// merge lands in a temp file that is renamed into place, and on any
// failure no partial output remains at outputPath.
func (a *Assembler) Assemble(sections []models.Section, templatePath, outputPath string) error {
	if err := a.CheckTemplate(templatePath); err != nil {
		return err
	}

	outDir := filepath.Dir(outputPath)

	// Content pages go into a scoped temp file so pdfcpu can merge from
	// disk; removed unconditionally when done.
	contentFile, err := os.CreateTemp(outDir, ".nessreport-content-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create temp content file: %w", err)
	}
	contentPath := contentFile.Name()
	defer func() { _ = os.Remove(contentPath) }()

	if err := a.writeContent(contentFile, sections); err != nil {
		_ = contentFile.Close()
		return fmt.Errorf("failed to build report content: %w", err)
	}
	if err := contentFile.Close(); err != nil {
		return fmt.Errorf("failed to flush report content: %w", err)
	}

	mergedPath := outputPath + ".tmp"
	if err := pdfapi.MergeCreateFile([]string{templatePath, contentPath}, mergedPath, false, nil); err != nil {
		_ = os.Remove(mergedPath)
		return fmt.Errorf("failed to merge template and content: %w", err)
	}

	if err := os.Rename(mergedPath, outputPath); err != nil {
		_ = os.Remove(mergedPath)
		return fmt.Errorf("failed to finalize output: %w", err)
	}
	return nil
}
