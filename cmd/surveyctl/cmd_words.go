package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"moda-survey/internal/service"
	"moda-survey/internal/survey"
)

var (
	wordsQuestion string
	wordsTop      int
	wordsByGender bool
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Most frequent terms of a free-text question",
	RunE:  runWords,
}

func init() {
	wordsCmd.Flags().StringVarP(&wordsQuestion, "question", "q", survey.KeyMotivation, "free-text question key (motivation, conscious, brands)")
	wordsCmd.Flags().IntVarP(&wordsTop, "top", "n", service.DefaultTopTerms, "number of terms per group")
	wordsCmd.Flags().BoolVar(&wordsByGender, "by-gender", false, "one list per gender")
}

func runWords(cmd *cobra.Command, args []string) error {
	dash, id, err := localDashboard(cmd)
	if err != nil {
		return err
	}
	groupBy := ""
	if wordsByGender {
		groupBy = service.GroupByGender
	}
	report, err := dash.Words(cmd.Context(), id, wordsQuestion, groupBy, wordsTop, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", err, wordsQuestion)
	}

	out := cmd.OutOrStdout()
	for _, g := range report.Groups {
		if g.Group != "" {
			fmt.Fprintf(out, "== %s ==\n", g.Group)
		}
		rows := make([][]string, 0, len(g.Terms))
		for _, t := range g.Terms {
			rows = append(rows, []string{t.Term, strconv.Itoa(t.Count)})
		}
		if err := printTable(out, []string{"Termo", "Contagem"}, rows); err != nil {
			return err
		}
	}
	return nil
}
