package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/nechh42/akilli-finans-asistan/library"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argPredictors predicts the positional arguments of subcommands.
var argPredictors = map[string]func() complete.Predictor{
	"learn": func() complete.Predictor {
		var slugs predict.Set
		for _, a := range library.Default().Articles {
			slugs = append(slugs, a.Slug)
		}
		return slugs
	},
}

// flagPredictors predicts the values of flags by name.
var flagPredictors = map[string]complete.Predictor{
	"config":   predict.Files("*.yaml"),
	"prices":   predict.Files("*.json"),
	"f":        predict.Files("*"),
	"kind":     predict.Set{"Kripto", "Döviz", "Değerli Madenler"},
	"jsonpath": predict.Something,
}

// Completion builds the shell completion of the application from the
// global flags and the subcommands' flags.
func Completion(global *flag.FlagSet, cmds ...subcommands.Command) *complete.Command {
	c := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagSetPredictors(global),
	}
	for _, cmd := range cmds {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagSetPredictors(fs)}
		if p, ok := argPredictors[cmd.Name()]; ok {
			sub.Args = p()
		}
		c.Sub[cmd.Name()] = sub
	}
	for _, name := range []string{"help", "flags", "commands"} {
		c.Sub[name] = &complete.Command{}
	}
	return c
}

func flagSetPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
