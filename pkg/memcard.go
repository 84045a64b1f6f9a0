// Package pkg provides functionality for processing PlayStation memory card images.
// This file contains the processor that loads card images and extracts saves.
package pkg

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hansbonini/mcdtools/pkg/common"
	"github.com/hansbonini/mcdtools/pkg/psx"
)

// MemoryCardProcessor handles memory card image operations (list/extract)
type MemoryCardProcessor struct {
	*MemoryCardExporter
	fs      afero.Fs
	options psx.Options
}

// NewMemoryCardProcessor creates a processor working on the host filesystem
func NewMemoryCardProcessor() *MemoryCardProcessor {
	return NewMemoryCardProcessorWithFs(afero.NewOsFs())
}

// NewMemoryCardProcessorWithFs creates a processor working on the given filesystem
func NewMemoryCardProcessorWithFs(fs afero.Fs) *MemoryCardProcessor {
	return &MemoryCardProcessor{
		MemoryCardExporter: NewMemoryCardExporter(),
		fs:                 fs,
	}
}

// SetStrictChecksums makes directory frame checksum mismatches fatal
func (p *MemoryCardProcessor) SetStrictChecksums(strict bool) {
	p.options.StrictChecksums = strict
}

// WarningLogger forwards parser warnings to the log, prefixed with the image path
type WarningLogger struct {
	Source string
}

// Warn implements psx.WarningSink
func (l WarningLogger) Warn(w psx.Warning) {
	common.LogWarn(common.WarnCardWarning, l.Source, w)
}

// LoadCard reads a whole memory card image and parses it
func (p *MemoryCardProcessor) LoadCard(path string) (*psx.MemoryCard, error) {
	common.LogDebug(common.InfoLoadingImage, path)

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToReadImage, err)
	}

	opts := p.options
	opts.Sink = WarningLogger{Source: path}

	card, err := psx.Load(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s '%s': %w", common.ErrFailedToParseImage, path, err)
	}

	common.LogDebug(common.DebugFormatDetected, card.Format(), card.DataOffset())
	for _, b := range card.Blocks() {
		common.LogDebug(common.DebugBlockStatus, b.Number, b.Status)
		switch {
		case b.HasTitle:
			common.LogDebug(common.DebugBlockTitle, b.Number, b.Title)
		case b.Status.IsContinuation():
			common.LogDebug(common.DebugLinkedBlock, b.Number)
		}
	}
	common.LogDebug(common.InfoImageLoaded, card.Format(), card.Size())

	return card, nil
}

// ExtractSave writes the payload of the save starting at block to outputPath,
// creating parent directories as needed. It returns the number of bytes written.
func (p *MemoryCardProcessor) ExtractSave(card *psx.MemoryCard, block int, outputPath string) (int64, error) {
	ranges, err := card.ExtractRanges(block)
	if errors.Is(err, psx.ErrNotExtractable) {
		return 0, common.FormatError(common.ErrNothingToExtract, err)
	}
	if err != nil {
		return 0, common.FormatError(common.ErrFailedToResolveRanges, err)
	}
	expected := 0
	for _, r := range ranges {
		expected += r.Len()
	}

	dir := filepath.Dir(outputPath)
	if err := p.fs.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("%s %s: %w", common.ErrFailedToCreateDir, dir, err)
	}

	outFile, err := p.fs.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", common.ErrFailedToCreateOutput, outputPath, err)
	}
	defer outFile.Close()

	written, err := WriteRanges(outFile, card, ranges)
	if err == nil && written != int64(expected) {
		err = common.FormatErrorString(common.ErrFailedToWriteSave, "wrote %d of %d bytes", written, expected)
	}
	if err != nil {
		outFile.Close()
		p.removePartial(outputPath)
		return written, err
	}
	if err := outFile.Close(); err != nil {
		p.removePartial(outputPath)
		return written, common.FormatError(common.ErrFailedToWriteSave, err)
	}

	common.LogInfo(common.InfoSaveExtracted, written, block, outputPath)
	return written, nil
}

// removePartial deletes an output file left truncated by a failed extraction
func (p *MemoryCardProcessor) removePartial(path string) {
	if err := p.fs.Remove(path); err != nil {
		common.LogWarn(common.WarnPartialOutput, path, err)
	}
}

// WriteRanges copies the image bytes covered by ranges to writer, in order
func WriteRanges(writer io.Writer, card *psx.MemoryCard, ranges []psx.Range) (int64, error) {
	var written int64
	for _, r := range ranges {
		common.LogDebug(common.DebugWritingRange, r.Start, r.End-1)

		data, err := card.ReadRanges([]psx.Range{r})
		if err != nil {
			return written, common.FormatError(common.ErrFailedToWriteSave, err)
		}
		n, err := writer.Write(data)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("%s at offset %d: %w", common.ErrFailedToWriteSave, written, err)
		}
	}
	return written, nil
}

// ExportYAMLFile writes the card listing as YAML to outputPath
func (p *MemoryCardProcessor) ExportYAMLFile(card *psx.MemoryCard, source, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := p.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%s %s: %w", common.ErrFailedToCreateDir, dir, err)
		}
	}

	yamlWriter, err := p.fs.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", common.ErrFailedToCreateOutput, outputPath, err)
	}
	defer yamlWriter.Close()

	if err := p.ExportYAML(card, source, yamlWriter); err != nil {
		return err
	}

	common.LogInfo(common.InfoListingExported, len(card.List()), len(card.Saves()), outputPath)
	return nil
}
