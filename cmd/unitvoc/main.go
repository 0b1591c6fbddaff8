// Package main provides the UnitVoc command line tool for inspecting
// feature manifests and containers.
package main

import (
	"fmt"
	"os"

	"github.com/unitvoc/unitvoc/featstore"
	"github.com/unitvoc/unitvoc/scp"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("UnitVoc %s\n", version)
	case "scp":
		err = runScp(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "unitvoc: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("UnitVoc - feature I/O utilities for discrete-unit vocoding")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  scp <manifest>       List keys and locations of a feature manifest")
	fmt.Println("  inspect <container>  List datasets of a feature container")
}

func runScp(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: unitvoc scp <manifest>")
	}
	index, err := scp.ParseIndex(args[0])
	if err != nil {
		return err
	}
	for _, key := range index.Keys() {
		location, err := index.Path(key)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", key, location)
	}
	fmt.Printf("%d keys\n", index.Len())
	return nil
}

func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: unitvoc inspect <container>")
	}
	r, err := featstore.Open(args[0])
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Close() // Best effort close
	}()

	for _, name := range r.Datasets() {
		d, err := r.Read(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%v\n", name, d.DType(), d.Shape())
	}
	return nil
}
