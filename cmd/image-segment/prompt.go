package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/image-segment-mcp/internal/config"
)

// prompt asks on w for every required setting cfg is missing, reading one
// answer per line from r. An unparseable granularity is asked again.
func prompt(cfg *config.Config, r io.Reader, w io.Writer) error {
	in := bufio.NewScanner(r)

	ask := func(question string) (string, error) {
		fmt.Fprint(w, question)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return "", err
			}
			return "", errors.New("no answer: input closed")
		}
		return strings.TrimSpace(in.Text()), nil
	}

	for _, name := range cfg.Missing() {
		switch name {
		case "input":
			answer, err := ask("Input image file: ")
			if err != nil {
				return err
			}
			cfg.Input = answer
		case "output":
			answer, err := ask("Output image file: ")
			if err != nil {
				return err
			}
			cfg.Output = answer
		case "granularity":
			for {
				answer, err := ask("Granularity (e.g. 300): ")
				if err != nil {
					return err
				}
				k, err := strconv.ParseFloat(answer, 64)
				if err == nil && k >= 0 {
					cfg.SetGranularity(k)
					break
				}
				fmt.Fprintf(w, "%q is not a non-negative number\n", answer)
			}
		}
	}
	return nil
}
