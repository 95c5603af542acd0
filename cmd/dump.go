package cmd

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mabhi256/hprofdecoder/internal/hprof"
	"github.com/mabhi256/hprofdecoder/utils"
)

var (
	byteOrderFlag    string
	stackBufferFlag  string
	stringBufferFlag string
	instanceBufFlag  string
)

var dumpCmd = &cobra.Command{
	Use:   "dump [hprof-file]",
	Short: "Stream-decode a heap dump and report what it contains",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

var validateCmd = &cobra.Command{
	Use:   "validate [hprof-file]",
	Short: "Decode a heap dump without reporting record contents, failing on the first malformed record",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	for _, c := range []*cobra.Command{dumpCmd, validateCmd} {
		c.Flags().StringVar(&byteOrderFlag, "byte-order", "big", `wire byte order: "big" or "little"`)
		c.Flags().StringVar(&stackBufferFlag, "max-stack-buffer", "64K", "maximum size of the stack-frame scratch buffer")
		c.Flags().StringVar(&stringBufferFlag, "max-string-buffer", "64K", "maximum size of the string scratch buffer")
		c.Flags().StringVar(&instanceBufFlag, "max-instance-buffer", "64K", "maximum size of the instance scratch buffer")
		c.ValidArgsFunction = utils.CompleteFilesByExtension([]string{".hprof", ".bin"}, false)
		rootCmd.AddCommand(c)
	}
}

func buildDecoder() (*hprof.Decoder, error) {
	b := hprof.NewBuilder()

	switch byteOrderFlag {
	case "big":
		// default
	case "little":
		b.ByteOrder(binary.LittleEndian)
	default:
		return nil, fmt.Errorf("unrecognised --byte-order %q", byteOrderFlag)
	}

	stackMax, err := utils.ParseMemorySize(stackBufferFlag)
	if err != nil {
		return nil, fmt.Errorf("--max-stack-buffer: %w", err)
	}
	stringMax, err := utils.ParseMemorySize(stringBufferFlag)
	if err != nil {
		return nil, fmt.Errorf("--max-string-buffer: %w", err)
	}
	instanceMax, err := utils.ParseMemorySize(instanceBufFlag)
	if err != nil {
		return nil, fmt.Errorf("--max-instance-buffer: %w", err)
	}

	b.MaxStackBufferCapacity(int(stackMax.Bytes())).
		MaxStringBufferCapacity(int(stringMax.Bytes())).
		MaxInstanceBufferCapacity(int(instanceMax.Bytes()))

	return b.Build(), nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	decoder, err := buildDecoder()
	if err != nil {
		return err
	}

	start := time.Now()
	if err := decoder.Read(f, &summaryVisitor{}); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Printf("valid hprof stream, decoded in %s\n", utils.FormatDuration(time.Since(start)))
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	decoder, err := buildDecoder()
	if err != nil {
		return err
	}

	s := &summaryVisitor{}
	start := time.Now()
	if err := decoder.Read(f, s); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	elapsed := time.Since(start)

	printSummary(args[0], s, elapsed)
	return nil
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	valueStyle   = lipgloss.NewStyle().Bold(true)
)

// isTerminal reports whether fd carries a terminal, so styled summary output
// only goes to an interactive shell and not into a pipe or redirected file.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var countPrinter = message.NewPrinter(language.English)

func row(label string, value any, styled bool) string {
	if !styled {
		return fmt.Sprintf("%-22s%v", label, value)
	}
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value))
}

func printSummary(path string, s *summaryVisitor, elapsed time.Duration) {
	styled := isTerminal(os.Stdout)

	heading := path
	if styled {
		heading = headingStyle.Render(path)
	}
	fmt.Println(heading)

	fmt.Println(row("format", s.format, styled))
	fmt.Println(row("identifier size", fmt.Sprintf("%d bytes", s.idSize), styled))
	fmt.Println(row("strings", countPrinter.Sprintf("%d", s.strings), styled))
	fmt.Println(row("loaded classes", countPrinter.Sprintf("%d", s.loadClasses), styled))
	fmt.Println(row("stack frames", countPrinter.Sprintf("%d", s.stackFrames), styled))
	fmt.Println(row("stack traces", countPrinter.Sprintf("%d", s.stackTraces), styled))
	fmt.Println(row("gc roots", countPrinter.Sprintf("%d", s.roots), styled))
	fmt.Println(row("class dumps", countPrinter.Sprintf("%d", s.classDumps), styled))
	fmt.Println(row("instance dumps", countPrinter.Sprintf("%d", s.instances), styled))
	fmt.Println(row("array dumps", countPrinter.Sprintf("%d", s.arrays), styled))
	fmt.Println(row("instance bytes", utils.MemorySize(s.instanceBytes), styled))
	fmt.Println(row("decode time", utils.FormatDuration(elapsed), styled))
}
