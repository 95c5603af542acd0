package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hprofdecode",
	Short: "Decode JVM heap dumps (hprof) and report their contents",
	Long:  `hprofdecode streams a JVM heap dump and reports what a decode pass finds in it.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}
