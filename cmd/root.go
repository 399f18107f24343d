// sysincludes [-c compiler]
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/qobs-build/sysincludes/internal/includes"
	"github.com/qobs-build/sysincludes/internal/msg"
	"github.com/spf13/cobra"
)

var (
	flagCompiler string
	flagMatch    string
	flagLang     EnumValue = NewEnumValue(includes.LangCxx, map[string]string{
		includes.LangCxx: "Query in C++ mode (default)",
		includes.LangC:   "Query in C mode",
	})
	flagFormat EnumValue = NewEnumValue("plain", map[string]string{
		"plain":  "One directory per line (default)",
		"json":   "JSON array of directories",
		"cflags": "A single -isystem argument line",
	})
)

func doDiscover(cmd *cobra.Command, args []string) {
	dirs, err := includes.Discover(includes.Options{
		Compiler: flagCompiler,
		Lang:     flagLang.Value(),
	})
	if err != nil {
		msg.Fatal("%v", err)
	}

	if flagMatch != "" {
		dirs, err = includes.FilterGlob(dirs, flagMatch)
		if err != nil {
			msg.Fatal("bad pattern %q: %v", flagMatch, err)
		}
		if len(dirs) == 0 {
			msg.Fatal("no include directories match %q", flagMatch)
		}
	}

	if err := printDirs(dirs, flagFormat.Value()); err != nil {
		msg.Fatal("%v", err)
	}
}

func printDirs(dirs []string, format string) error {
	switch format {
	case "plain":
		for _, dir := range dirs {
			fmt.Println(dir)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dirs)
	case "cflags":
		cflags := make([]string, 0, 2*len(dirs))
		for _, dir := range dirs {
			cflags = append(cflags, "-isystem", dir)
		}
		fmt.Println(strings.Join(cflags, " "))
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "sysincludes",
	Short: "Print the system include search path of a C/C++ compiler",
	Long: `Print the system include search path of a C/C++ compiler, in search order.

gcc-like compilers are queried with -v -E; on Windows without a compiler the
INCLUDE environment variable is parsed instead.`,
	Args: cobra.NoArgs,
	Run:  doDiscover,
}

func init() {
	rootCmd.Flags().StringVarP(&flagCompiler, "compiler", "c", "", "Path to the C++ compiler to query")
	rootCmd.Flags().StringVarP(&flagMatch, "match", "m", "", "Only print directories matching a glob pattern")
	rootCmd.Flags().VarP(&flagLang, "lang", "x", "Language to query for, one of "+flagLang.HelpString())
	rootCmd.RegisterFlagCompletionFunc("lang", flagLang.CompletionFunc())
	rootCmd.Flags().VarP(&flagFormat, "format", "f", "Output format, one of "+flagFormat.HelpString())
	rootCmd.RegisterFlagCompletionFunc("format", flagFormat.CompletionFunc())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
