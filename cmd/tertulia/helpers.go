package main

import (
	"strconv"

	"tertulia/internal/decision"
	"tertulia/internal/episode"
	"tertulia/internal/master"
)

func itoa(v int) string { return strconv.Itoa(v) }

// loadMaster opens the master store, taking the write lock first when the
// run is going to mutate it in place.
func loadMaster(ctx *commandContext, mutating bool) (*master.Store, []episode.Episode, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := ctx.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	store := master.NewStore(cfg.Master.Path, log)
	if mutating {
		if err := store.Acquire(); err != nil {
			return nil, nil, err
		}
	}
	episodes, err := store.Load()
	if err != nil {
		if mutating {
			store.Release()
		}
		return nil, nil, err
	}
	return store, episodes, nil
}

// saveMaster persists the episode list: dry runs skip the write entirely,
// --output redirects it to another file without a backup, and in-place
// writes back up the current master first.
func saveMaster(store *master.Store, episodes []episode.Episode, dec decision.Provider, dryRun bool, output string) (string, error) {
	switch {
	case dryRun:
		return "dry run, nothing written", nil
	case output != "" && output != store.Path():
		changed, err := store.WriteTo(output, episodes)
		if err != nil {
			return "", err
		}
		if !changed {
			return "unchanged: " + output, nil
		}
		return "written: " + output, nil
	default:
		if err := store.Backup(dec); err != nil {
			return "", err
		}
		changed, err := store.Write(episodes)
		if err != nil {
			return "", err
		}
		if !changed {
			return "unchanged: " + store.Path(), nil
		}
		return "written: " + store.Path(), nil
	}
}

func reportTable(rep master.Report) string {
	rows := make([][]string, 0, len(rep.Rows)+2)
	rows = append(rows,
		[]string{"Episodes", itoa(rep.Episodes), "", ""},
		[]string{"Parts", itoa(rep.Parts), "", ""},
	)
	for _, row := range rep.Rows {
		rows = append(rows, []string{row.Category, itoa(row.Complete), itoa(row.Missing), row.Percent()})
	}
	return renderTable(
		[]string{"Category", "Complete", "Missing", "Coverage"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)
}
