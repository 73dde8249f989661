package cmd

import (
	"github.com/etnz/wallet/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"balance": {Flags: map[string]complete.Predictor{
				"period": predict.Set{"day", "week", "month", "quarter", "year"},
			}},
			"history": {Flags: map[string]complete.Predictor{"tail": predict.Nothing}},
			"add": {Flags: map[string]complete.Predictor{
				"c": predict.Set{"income", "expense"},
				"d": predict.Nothing,
				"a": predict.Nothing,
				"m": predict.Nothing,
			}},
			"menu":   {},
			"remove": {Args: predict.Nothing},
			"topic":  {Args: predict.Set(topics), Flags: map[string]complete.Predictor{"list": predict.Nothing}},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
			"locale":      predict.Set{"en", "ru"},
			"currency":    predict.Nothing,
			"v":           predict.Nothing,
		},
	}
}
