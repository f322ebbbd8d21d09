package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/etnz/traveltales/advisor"
	"github.com/google/subcommands"
)

type captionCmd struct {
	file string
}

func (*captionCmd) Name() string     { return "caption" }
func (*captionCmd) Synopsis() string { return "suggest an AI caption for a photo" }
func (*captionCmd) Usage() string {
	return `tt caption -file <image_file>

  Suggests a short, poetic caption for an image, to use with
  'tt newentry -photo <file> -caption <text>'. Needs GEMINI_API_KEY (or
  GOOGLE_API_KEY) in the environment. Nothing is stored.
`
}

func (p *captionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "file", "", "Image file to caption.")
}

func (p *captionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := os.ReadFile(p.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read photo %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}

	result := advisor.New(ctx).Caption(ctx, data, http.DetectContentType(data))
	if result.Status != advisor.OK {
		fmt.Fprintln(os.Stderr, result)
		return subcommands.ExitFailure
	}
	fmt.Println(result)
	return subcommands.ExitSuccess
}
