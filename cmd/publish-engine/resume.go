// Copyright Punit Mishra, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/punitmishra/publish-engine/internal/ledger"
	"github.com/punitmishra/publish-engine/internal/resume"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Build the resume HTML document, optionally as PDF",
	Long: `Resume renders the structured resume data file into a self-contained,
inline-styled HTML document. With --pdf it additionally rasterizes the
document through headless Chrome.

The HTML file is always written first. If PDF generation fails (no Chrome
installed, sandboxed environment) the HTML is kept and can be printed from
any browser; the command does not fail in that case.`,
	RunE: runResume,
}

func init() {
	resumeCmd.Flags().String("data", "", "resume data file (default from config)")
	resumeCmd.Flags().String("out", "", "output HTML path (default <output_dir>/resume.html)")
	resumeCmd.Flags().Bool("pdf", false, "also render a PDF next to the HTML file")

	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) error {
	rcfg := resumeConfig()

	dataFile, _ := cmd.Flags().GetString("data")
	if dataFile == "" {
		dataFile = rcfg.DataFile
	}
	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		outPath = filepath.Join(rcfg.OutputDir, "resume.html")
	}
	wantPDF, _ := cmd.Flags().GetBool("pdf")

	// The export event is recorded before rendering begins, mirroring the
	// site's download analytics. A broken ledger must not block the export.
	if led, err := ledger.Open(publishConfig().LedgerPath); err == nil {
		if err := led.RecordEvent("resume_export", outPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: export not recorded: %v\n", err)
		}
		led.Close()
	} else {
		fmt.Fprintf(os.Stderr, "warning: export not recorded: %v\n", err)
	}

	data, err := resume.LoadData(dataFile)
	if err != nil {
		return err
	}

	html, err := resume.BuildHTML(data)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("Wrote %s\n", outPath)

	if !wantPDF {
		return nil
	}

	pdfPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".pdf"
	if err := resume.WritePDF(cmd.Context(), outPath, pdfPath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: PDF generation failed: %v\n", err)
		fmt.Printf("Open %s in a browser and print it to PDF instead.\n", outPath)
		return nil
	}
	fmt.Printf("Wrote %s\n", pdfPath)
	return nil
}
