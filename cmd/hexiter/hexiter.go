package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/SLASH2NL/hexiter"
	"github.com/SLASH2NL/hexiter/arrays"
	"github.com/SLASH2NL/hexiter/extract"
	"github.com/SLASH2NL/hexiter/internal/lexer"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	cobra.CheckErr(newRootCmd(afero.NewOsFs()).Execute())
}

// newRootCmd builds the command tree on top of fs.
func newRootCmd(fs afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hexiter",
		Short:         "A tool to decode and validate hexadecimal text.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().Bool("lower-only", false, "Reject the upper case digits A-F.")
	rootCmd.PersistentFlags().Bool("wide", false, "Accept full-width digits such as '０' and 'Ａ'.")

	rootCmd.AddCommand(newDecodeCmd(fs), newCheckCmd(fs), newVetCmd())

	return rootCmd
}

// newDecodeCmd decodes hex text from a file or stdin.
func newDecodeCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Decode the hex text in FILE, or stdin, and write the bytes to stdout.",
		Long: `Decode the hex text in FILE, or stdin, and write the bytes to stdout.

Digits may be grouped with spaces, ':', '-' or ',' and each group may carry a 0x prefix.

# Print the decoded bytes of a MAC address back as hex, last byte first.
$ echo "00:1a:2b:3c:4d:5e" | hexiter decode --reverse --output hex
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if len(args) == 1 {
				raw, err = afero.ReadFile(fs, args[0])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			reverse, _ := cmd.Flags().GetBool("reverse")
			output, _ := cmd.Flags().GetString("output")

			input := string(raw)
			decoded, err := decodeInput(cmd.ErrOrStderr(), input, reverse, decoderOptions(cmd)...)
			if err != nil {
				return err
			}

			return writeDecoded(cmd.OutOrStdout(), output, decoded)
		},
	}

	cmd.Flags().Bool("reverse", false, "Walk the decoder backward from the end and write the bytes last to first.")
	cmd.Flags().String("output", "raw", "Output format: raw, hex or yaml.")

	return cmd
}

// newCheckCmd validates all tables in a directory.
func newCheckCmd(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "check TABLE_DIR",
		Short: "Decode every table file in TABLE_DIR and print the byte length of each value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := hexiter.TablesFromFs(afero.NewBasePathFs(fs, args[0]), decoderOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("error reading tables: %w", err)
			}

			names := make([]string, 0, len(tables))
			for name := range tables {
				names = append(names, name)
			}
			sort.Strings(names)

			// Write a custom yaml structure to preserve the order.
			root := &yaml.Node{
				Kind: yaml.MappingNode,
				Tag:  "!!map",
			}

			for _, name := range names {
				table := &yaml.Node{
					Kind: yaml.MappingNode,
					Tag:  "!!map",
				}

				for _, key := range tables[name].Keys() {
					value, _ := tables[name].Bytes(key)
					table.Content = append(table.Content, scalar("!!str", string(key)), scalar("!!int", fmt.Sprint(len(value))))
				}

				root.Content = append(root.Content, scalar("!!str", name), table)
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(root); err != nil {
				return fmt.Errorf("error writing yaml: %w", err)
			}

			return encoder.Close()
		},
	}
}

// newVetCmd reports hexiter.Hex literals in Go source that do not decode.
func newVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet SRC_DIR",
		Short: "Scan the Go source in SRC_DIR for hexiter.Hex values and report those that do not decode.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			literals, err := extract.HexFromSource(args[0])
			if err != nil {
				return fmt.Errorf("error extracting hex values: %w", err)
			}

			invalid := 0
			for _, literal := range literals {
				if _, err := hexiter.DecodeString(literal.Value, decoderOptions(cmd)...); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %q: %s\n", literal.Pos, literal.Value, err)
					invalid++
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d hex values do not decode", invalid, len(literals))
			}

			return nil
		},
	}
}

func decoderOptions(cmd *cobra.Command) []hexiter.DecoderOption {
	var opts []hexiter.DecoderOption

	if lowerOnly, _ := cmd.Flags().GetBool("lower-only"); lowerOnly {
		opts = append(opts, hexiter.WithLowerCaseOnly())
	}
	if wide, _ := cmd.Flags().GetBool("wide"); wide {
		opts = append(opts, hexiter.WithWideDigits())
	}

	return opts
}

// decodeInput compacts input and decodes it. An error points at the
// offending text of input, underlined when errw is a terminal.
func decodeInput(errw io.Writer, input string, reverse bool, opts ...hexiter.DecoderOption) ([]byte, error) {
	compacted, err := lexer.Compact(input)
	var serr *lexer.SyntaxError
	if errors.As(err, &serr) {
		return nil, errors.New(serr.Render(errw))
	}
	if err != nil {
		return nil, err
	}

	d := hexiter.NewBase16Decoder(hexiter.NewStringCursor(compacted.Digits), opts...)

	decoded, err := hexiter.Collect[byte](d)
	if err == nil && reverse {
		decoded, err = hexiter.CollectReverse[byte](d)
	}

	var ferr *hexiter.FormatError
	if errors.As(err, &ferr) {
		start, end := compacted.Span(input, ferr.Index)
		return nil, fmt.Errorf("%w at position %d (%s)", err, start, lexer.Highlight(errw, input, start, end))
	}
	if err != nil {
		return nil, err
	}

	return decoded, nil
}

func writeDecoded(w io.Writer, output string, decoded []byte) error {
	switch output {
	case "raw":
		_, err := w.Write(decoded)
		return err
	case "hex":
		_, err := fmt.Fprintln(w, arrays.HexString(decoded))
		return err
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report{Length: len(decoded), Hex: arrays.HexString(decoded)}); err != nil {
			return fmt.Errorf("error writing yaml: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

type report struct {
	Length int    `yaml:"length"`
	Hex    string `yaml:"hex"`
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
