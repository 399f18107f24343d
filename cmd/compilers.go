// sysincludes compilers
package cmd

import (
	"fmt"

	"github.com/qobs-build/sysincludes/internal/includes"
	"github.com/qobs-build/sysincludes/internal/msg"
	"github.com/spf13/cobra"
)

var cxxOnly bool

func doCompilers(cmd *cobra.Command, args []string) {
	compilers := includes.FindCompilers(cxxOnly, nil)
	if len(compilers) == 0 {
		msg.Fatal("no compilers found on this system")
	}
	for _, compiler := range compilers {
		fmt.Printf("%s\t%s\n", compiler.Name, compiler.Path)
	}
}

var compilersCmd = &cobra.Command{
	Use:   "compilers",
	Short: "List C/C++ compilers found on this system",
	Long:  `List C/C++ compilers found on this system: the CC/CXX override first, then well-known commands on PATH.`,
	Args:  cobra.NoArgs,
	Run:   doCompilers,
}

func init() {
	// sysincludes compilers subcommand
	rootCmd.AddCommand(compilersCmd)
	compilersCmd.Flags().BoolVar(&cxxOnly, "cxx", false, "List C++ compilers instead of C compilers")
}
