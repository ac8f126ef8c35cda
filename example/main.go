package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/codeOverFlow/parg"
)

func main() {
	config := parg.WithValue("config", parg.KindString, true)
	config.SetDescription("path to the configuration file")

	thread := parg.WithDefaultValue("thread", parg.KindUint8, uint8(4), false)
	thread.SetDescription("number of worker threads")

	verbose := parg.WithoutValue("verbose", false)
	verbose.SetDescription("enable verbose output")

	cli := parg.New(config, thread, verbose)
	cli.SetInfo("example", "Demonstrates declarative argument parsing")

	if err := cli.Parse(); err != nil {
		if errors.Is(err, parg.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	configPath, err := parg.Get[string](cli, "config")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("config =", configPath)

	threads, err := cli.Uint8("thread")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("thread =", threads)

	fmt.Println("verbose =", cli.Exists("verbose"))
}
