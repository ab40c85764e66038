// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contract-scan/internal/anchors"
	"contract-scan/internal/checks/regulation"
	"contract-scan/internal/config"
	"contract-scan/internal/contract"
	"contract-scan/internal/core"
	"contract-scan/internal/extract"
	"contract-scan/internal/feed"
	"contract-scan/internal/notify"
	"contract-scan/internal/render"
	"contract-scan/internal/storage"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to configuration file (YAML)")
		action     = flag.String("action", "", "Action to perform: fetch, list, scan, apply")
		regID      = flag.String("id", "", "Regulation ID (for apply action)")
		notifyTo   = flag.String("notify", "", "Email address to notify with the updated contract (for apply action)")
	)
	flag.Parse()

	if *action == "" {
		fmt.Println("Error: --action is required")
		fmt.Println("Usage: contract-feed --action <fetch|list|scan|apply> [options]")
		os.Exit(1)
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	store := storage.NewStore(cfg)
	if err := store.EnsureDirs(); err != nil {
		fmt.Printf("Error preparing storage: %v\n", err)
		os.Exit(1)
	}

	switch *action {
	case "fetch":
		fetchRegulation(store)
	case "list":
		listRegulations(store)
	case "scan":
		scanContracts(store)
	case "apply":
		if *regID == "" {
			fmt.Println("Error: --id is required for apply action")
			os.Exit(1)
		}
		applyRegulation(cfg, store, *regID, *notifyTo)
	default:
		fmt.Printf("Error: Unknown action '%s'\n", *action)
		fmt.Println("Valid actions: fetch, list, scan, apply")
		os.Exit(1)
	}
}

// fetchRegulation pulls the next regulation from the simulated feed and
// tracks it.
func fetchRegulation(store *storage.Store) {
	existing, err := store.LoadRegulations()
	if err != nil {
		fmt.Printf("Error loading regulations: %v\n", err)
		os.Exit(1)
	}

	reg := feed.NewSimulator().Next(existing)
	if reg == nil {
		fmt.Println("No new regulations available.")
		return
	}

	if err := store.AppendRegulation(*reg); err != nil {
		fmt.Printf("Error tracking regulation: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Tracked new regulation: %s (%s)\n", reg.Title, reg.ID)
}

func listRegulations(store *storage.Store) {
	regs, err := store.LoadRegulations()
	if err != nil {
		fmt.Printf("Error loading regulations: %v\n", err)
		os.Exit(1)
	}
	if len(regs) == 0 {
		fmt.Println("No regulations tracked.")
		return
	}

	fmt.Printf("Tracking %d regulations:\n\n", len(regs))
	for _, reg := range regs {
		fmt.Printf("ID: %s\n", reg.ID)
		fmt.Printf("Title: %s\n", reg.Title)
		if reg.Jurisdiction != "" {
			fmt.Printf("Jurisdiction: %s\n", reg.Jurisdiction)
		}
		if reg.DatePublished != "" {
			fmt.Printf("Published: %s\n", reg.DatePublished)
		}
		if len(reg.Keywords) > 0 {
			fmt.Printf("Keywords: %s\n", strings.Join(reg.Keywords, ", "))
		}
		fmt.Println("---")
	}
}

// scanContracts matches every tracked regulation against every stored
// contract and reports relevance scores.
func scanContracts(store *storage.Store) {
	regs, err := store.LoadRegulations()
	if err != nil {
		fmt.Printf("Error loading regulations: %v\n", err)
		os.Exit(1)
	}
	index, err := store.LoadIndex()
	if err != nil {
		fmt.Printf("Error loading contract index: %v\n", err)
		os.Exit(1)
	}
	if len(index) == 0 {
		fmt.Println("No contracts in store.")
		return
	}

	affected := 0
	for cid, meta := range index {
		text, err := extract.ReadContractText(store.ContractPath(meta))
		if err != nil {
			fmt.Printf("Warning: skipping %s: %v\n", cid, err)
			continue
		}
		for _, reg := range regs {
			score, matched := regulation.Score(reg, text)
			if score == 0 {
				continue
			}
			affected++
			fmt.Printf("%s (v%d) matches %q: score %d, keywords: %s\n",
				cid, meta.Version, reg.Title, score, strings.Join(matched, ", "))
		}
	}
	if affected == 0 {
		fmt.Println("No contracts affected by tracked regulations.")
	}
}

// applyRegulation injects the update clause for one regulation into every
// affected contract, recording a new version per contract.
func applyRegulation(cfg *config.Config, store *storage.Store, regID, notifyTo string) {
	regs, err := store.LoadRegulations()
	if err != nil {
		fmt.Printf("Error loading regulations: %v\n", err)
		os.Exit(1)
	}

	var reg *contract.Regulation
	for i := range regs {
		if regs[i].ID == regID {
			reg = &regs[i]
			break
		}
	}
	if reg == nil {
		fmt.Printf("Error: regulation not found: %s\n", regID)
		os.Exit(1)
	}

	matcher := anchors.Default()
	if len(cfg.Anchors) > 0 {
		matcher, err = anchors.New(cfg.Anchors)
		if err != nil {
			fmt.Printf("Error: invalid anchor pattern in config: %v\n", err)
			os.Exit(1)
		}
	}

	index, err := store.LoadIndex()
	if err != nil {
		fmt.Printf("Error loading contract index: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	updated := 0
	for cid, meta := range index {
		text, err := extract.ReadContractText(store.ContractPath(meta))
		if err != nil {
			fmt.Printf("Warning: skipping %s: %v\n", cid, err)
			continue
		}

		score, matched := regulation.Score(*reg, text)
		if score == 0 {
			continue
		}

		newText := core.ApplyRegulationUpdate(text, *reg, matched, now, matcher)
		newVersion := meta.Version + 1
		newFile := render.VersionFilename(cid, newVersion, ".txt")
		newPath := filepath.Join(store.ContractsDir(), newFile)

		if err := render.WriteTextVersion(newPath, newText); err != nil {
			fmt.Printf("Error writing %s: %v\n", newPath, err)
			os.Exit(1)
		}
		if err := store.RecordVersion(cid, newFile, now); err != nil {
			fmt.Printf("Error recording version for %s: %v\n", cid, err)
			os.Exit(1)
		}
		if err := store.SetStatus(cid, "Updated"); err != nil {
			fmt.Printf("Error updating status for %s: %v\n", cid, err)
			os.Exit(1)
		}
		updated++
		fmt.Printf("Updated %s to v%d for %q\n", cid, newVersion, reg.Title)

		if notifyTo != "" {
			mailer := notify.NewMailer(cfg)
			subject := fmt.Sprintf("Contract Updated: %s (v%d)", meta.OriginalName, newVersion)
			body := fmt.Sprintf("The contract %s was updated to version %d to reflect %q.\nThe new version is attached.",
				meta.OriginalName, newVersion, reg.Title)
			if err := mailer.SendWithAttachment(notifyTo, subject, body, newPath); err != nil {
				fmt.Printf("Warning: notification for %s failed: %v\n", cid, err)
			} else {
				fmt.Printf("Notified %s about %s v%d\n", notifyTo, cid, newVersion)
			}
		}
	}

	if updated == 0 {
		fmt.Println("No contracts affected; nothing applied.")
	}
}
