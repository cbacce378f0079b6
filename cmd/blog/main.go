// Command blog runs the blog API.
//
// @title                       Blog API
// @version                     1.0
// @description                 Blog posts with JWT authentication and student/teacher roles.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT token.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	serve := serveCmd()

	rootCmd := &cobra.Command{
		Use:           "blog",
		Short:         "Blog API with JWT authentication",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	rootCmd.AddCommand(
		serve,
		indexesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
