package main

import (
	"fmt"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/vitaly-krugl/yaghpy/internal/commands"
	"github.com/vitaly-krugl/yaghpy/internal/config"
	lambdapkg "github.com/vitaly-krugl/yaghpy/internal/lambda"
)

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg := config.FromEnvironment()
	app := commands.NewApp(cfg, GitSHA, GitDirty)

	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		awslambda.Start(lambdapkg.NewHandler(app))
		return
	}

	rootCmd := app.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
