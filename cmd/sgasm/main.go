// sgasm reduces an overlap relation into a string graph, collapses it into
// a unitig multigraph, and extracts contig and tiling paths. Determinism
// comes from insertion-ordered containers and explicit sorting (see package
// container), not from any hash-seed environment variable: unlike the
// source tool this replaces, map iteration order never leaks into output.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nanopore-tools/sgasm/contig"
	"github.com/nanopore-tools/sgasm/overlap"
	"github.com/nanopore-tools/sgasm/reduce"
	"github.com/nanopore-tools/sgasm/sgio"
	"github.com/nanopore-tools/sgasm/strand"
	"github.com/nanopore-tools/sgasm/tiling"
	"github.com/nanopore-tools/sgasm/unitig"
	"github.com/nanopore-tools/sgasm/unitigio"
)

func main() {
	overlapFile := flag.String("overlap-file", "preads.m4", "path to the overlap relation")
	lfc := flag.Bool("lfc", false, "use local-flow-constraint resolution instead of best-overlap")
	disableChimerBridgeRemoval := flag.Bool("disable-chimer-bridge-removal", false, "skip chimer-bridge detection")
	ctgPrefix := flag.String("ctg-prefix", "", "contig name prefix")
	haplospur := flag.Bool("haplospur", false, "enable haplotig-spur-aware contig extraction")
	depthCutoff := flag.Int("depth-cutoff", unitig.DefaultDepthCutoff, "bundle finder depth cutoff")
	widthCutoff := flag.Int("width-cutoff", unitig.DefaultWidthCutoff, "bundle finder width cutoff")
	lengthCutoff := flag.Int("length-cutoff", unitig.DefaultLengthCutoff, "bundle finder length cutoff")
	outDir := flag.String("out-dir", ".", "directory to write output files into")
	showProgress := flag.Bool("progress", false, "show a size-aware progress meter while reading the overlap file")
	verbose := flag.Bool("verbose", false, "log per-pass timing and counts")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage of %[1]s:
  $ %[1]s [options] --overlap-file preads.m4 --out-dir work/

Determinism does not depend on any hash-seed environment variable: every
container whose order reaches an output file iterates in insertion order or
is sorted first.

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if err := run(*overlapFile, *outDir, *ctgPrefix, *lfc, *disableChimerBridgeRemoval, *haplospur,
		*depthCutoff, *widthCutoff, *lengthCutoff, *showProgress, *verbose); err != nil {
		log.Fatalf("sgasm: %v", err)
	}
}

func run(overlapFile, outDir, ctgPrefix string, lfc, disableChimerBridgeRemoval, haplospur bool,
	depthCutoff, widthCutoff, lengthCutoff int, showProgress, verbose bool) error {

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating out-dir: %w", err)
	}

	records, err := ingestOverlaps(overlapFile, showProgress)
	if err != nil {
		return fmt.Errorf("ingesting overlaps: %w", err)
	}
	logStep(verbose, "ingest", len(records), time.Now())

	var sgOpts []strand.GraphOption
	if os.Getenv("SGASM_DEBUG_ASSERT") != "" {
		sgOpts = append(sgOpts, strand.WithComplementAssertions())
	}
	sg, err := strand.BuildFromOverlaps(records, sgOpts...)
	if err != nil {
		return fmt.Errorf("building string graph: %w", err)
	}

	transitiveReducePass(sg, verbose)

	var chimerNodes []strand.NodeName
	if !disableChimerBridgeRemoval {
		start := time.Now()
		chimerNodes = reduce.MarkChimerBridges(sg)
		logStep(verbose, "chimer-bridge removal", len(chimerNodes), start)
	}

	start := time.Now()
	spurCount := reduce.MarkSpurs(sg)
	logStep(verbose, "spur marking (pass 1)", spurCount, start)

	start = time.Now()
	var resolved int
	if lfc {
		resolved = reduce.LocalFlow(sg)
		logStep(verbose, "local-flow resolution", resolved, start)
	} else {
		resolved = reduce.BestOverlap(sg)
		logStep(verbose, "best-overlap resolution", resolved, start)
	}

	start = time.Now()
	spurCount = reduce.MarkSpurs(sg)
	logStep(verbose, "spur marking (pass 2)", spurCount, start)

	if err := writeFile(outDir, "sg_edges_list", func(f *os.File) error { return sgio.WriteEdgeList(f, sg) }); err != nil {
		return err
	}
	if !disableChimerBridgeRemoval {
		if err := writeFile(outDir, "chimers_nodes", func(f *os.File) error { return sgio.WriteChimerNodes(f, chimerNodes) }); err != nil {
			return err
		}
	}

	ug, circularPaths := unitig.BuildSimplePaths(sg)
	logStep(verbose, "simple-path construction", len(ug.Nodes()), time.Now())
	if len(circularPaths) > 0 {
		log.Printf("sgasm: %d branch-free circular path(s) found during simple-path construction", len(circularPaths))
	}
	if err := writeFile(outDir, "utg_data0", func(f *os.File) error { return unitigio.WriteUtgData0(f, ug) }); err != nil {
		return err
	}

	start = time.Now()
	bundles := unitig.CompoundPaths(ug, depthCutoff, widthCutoff, lengthCutoff)
	logStep(verbose, "compound-path consolidation", len(bundles), start)

	start = time.Now()
	n1 := unitig.RemoveSpurUnitigs(ug, 50000, unitig.UnitigSpur)
	n2 := unitig.RemoveSpurUnitigs(ug, 80000, unitig.UnitigSpur2)
	logStep(verbose, "spur-utg removal", n1+n2, start)

	start = time.Now()
	dupCount := unitig.RemoveSimpleDuplicates(ug)
	logStep(verbose, "simple-duplicate removal", dupCount, start)

	start = time.Now()
	bridgeCount := unitig.RemoveShortRepeatBridges(ug)
	logStep(verbose, "short-repeat-bridge removal", bridgeCount, start)

	if err := writeFile(outDir, "utg_data", func(f *os.File) error { return unitigio.WriteUtgData(f, ug) }); err != nil {
		return err
	}
	if err := writeFile(outDir, "unitigs.gfa", func(f *os.File) error { return unitigio.WriteGFA(f, ug) }); err != nil {
		return err
	}
	if err := writeFile(outDir, "unitigs.dual.gfa", func(f *os.File) error { return unitigio.WriteDualGFA(f, ug) }); err != nil {
		return err
	}

	bestIn := sg.BestIn
	if haplospur {
		start = time.Now()
		bestIn = contig.Haplospur(ug, bestIn)
		logStep(verbose, "haplospur refinement", len(bestIn), start)
	}

	start = time.Now()
	paths := contig.BuildPaths(ug, bestIn, true)
	records2 := contig.Extract(paths, ctgPrefix)
	logStep(verbose, "contig extraction", len(records2), start)

	start = time.Now()
	tilingPaths, alternates := tiling.Build(records2, sg, ug)
	logStep(verbose, "tiling-path construction", len(tilingPaths), start)

	if err := writeFile(outDir, "p_ctg_tiling_path", func(f *os.File) error { return tiling.WriteTilingPaths(f, tilingPaths) }); err != nil {
		return err
	}
	if err := writeFile(outDir, "a_ctg_all_tiling_path", func(f *os.File) error { return tiling.WriteAlternates(f, alternates) }); err != nil {
		return err
	}

	if breaches := sg.ComplementBreaches() + ug.ComplementBreaches(); breaches > 0 {
		log.Printf("sgasm: %d complement-invariant breaches recorded (set SGASM_DEBUG_ASSERT to panic on the next one)", breaches)
	}

	return nil
}

// transitiveReducePass runs the transitive-reduction pass, logging its
// duration when verbose.
func transitiveReducePass(sg *strand.Graph, verbose bool) {
	start := time.Now()
	reduce.TransitiveReduction(sg)
	logStep(verbose, "transitive reduction", len(sg.Nodes()), start)
}

func ingestOverlaps(path string, showProgress bool) ([]overlap.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !showProgress {
		return overlap.Ingest(f)
	}
	info, err := f.Stat()
	if err != nil {
		return overlap.Ingest(f)
	}
	return overlap.IngestProgress(f, info.Size(), filepath.Base(path))
}

func writeFile(outDir, name string, write func(*os.File) error) error {
	f, err := os.Create(filepath.Join(outDir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func logStep(verbose bool, label string, count int, start time.Time) {
	if !verbose {
		return
	}
	log.Printf("%-28s %8d  %s", label, count, time.Since(start))
}
