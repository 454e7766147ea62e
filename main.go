package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/alimasry/go-version-registry/registry"
	"github.com/alimasry/go-version-registry/seed"
	"github.com/alimasry/go-version-registry/server"
	"github.com/alimasry/go-version-registry/version"
)

func main() {
	addr := flag.String("addr", "", "HTTP listen address; empty prints the demo configurations and exits")
	seedPath := flag.String("seed", "", "YAML seed file (default: built-in demo)")
	last := flag.String("last", "sorted", `file targeted by "add to last file": sorted or inserted`)
	flag.Parse()

	policy, err := registry.ParsePolicy(*last)
	if err != nil {
		log.Fatal(err)
	}
	reg := registry.NewManagerWithPolicy(policy)

	s := seed.Demo()
	if *seedPath != "" {
		if s, err = seed.Load(*seedPath); err != nil {
			log.Fatal(err)
		}
	}
	if err := s.Apply(reg); err != nil {
		log.Printf("seed: %v", err)
	}

	if *addr == "" {
		printDemo(os.Stdout, reg)
		return
	}

	log.Printf("Starting server on %s", *addr)
	if err := http.ListenAndServe(*addr, server.NewHandler(reg)); err != nil {
		log.Fatal(err)
	}
}

func printDemo(w io.Writer, reg registry.Registry) {
	fmt.Fprintln(w, "Configuration for date 2024-03-26:")
	printVersions(w, reg.BuildConfigurationByDate("2024-03-26"))

	fmt.Fprintln(w, "\nConfiguration for version 2:")
	printVersions(w, reg.BuildConfigurationByVersion(2))

	fmt.Fprintln(w, "\nConfiguration for state Editing:")
	printVersions(w, reg.BuildConfigurationByState(version.Editing))
}

func printVersions(w io.Writer, vs []version.Version) {
	for _, v := range vs {
		fmt.Fprintf(w, "File: %s, Content: %s\n", v.Label(), v.Content())
		fmt.Fprintf(w, "    Version %d, State: %s, Date: %s\n", v.Number(), v.State(), v.Date())
	}
}
