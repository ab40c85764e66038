// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package storage persists contracts and regulation records as flat JSON
// files. It is a collaborator of the analysis core, never a dependency of
// it: the core receives document text and regulation slices as explicit
// arguments.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"contract-scan/internal/config"
	"contract-scan/internal/contract"
)

// ContractMeta describes one tracked contract in the index.
type ContractMeta struct {
	OriginalFile string `json:"original_file"`
	File         string `json:"file"`
	Version      int    `json:"version"`
	OriginalName string `json:"original_name"`
	UploadedAt   string `json:"uploaded_at"`
	LastUpdated  string `json:"last_updated,omitempty"`
	Status       string `json:"status,omitempty"`
}

// Store manages the flat-file layout: an id-keyed contract index, a
// contracts directory with versioned files, an originals directory with
// uploads as received, and a regulations file.
type Store struct {
	dataDir      string
	contractsDir string
	originalsDir string
	regsFile     string
	indexFile    string
}

// NewStore builds a store over the configured storage layout.
func NewStore(cfg *config.Config) *Store {
	return &Store{
		dataDir:      cfg.Storage.DataDir,
		contractsDir: cfg.Storage.ContractsDir,
		originalsDir: cfg.Storage.OriginalsDir,
		regsFile:     cfg.Storage.RegulationsFile,
		indexFile:    cfg.Storage.IndexFile,
	}
}

// EnsureDirs creates the storage directories and seeds empty index and
// regulations files when absent.
func (s *Store) EnsureDirs() error {
	for _, dir := range []string{s.dataDir, s.contractsDir, s.originalsDir} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating storage directory %s: %w", dir, err)
		}
	}
	if !fileExists(s.regsFile) {
		if err := writeJSON(s.regsFile, []contract.Regulation{}); err != nil {
			return err
		}
	}
	if !fileExists(s.indexFile) {
		if err := writeJSON(s.indexFile, map[string]ContractMeta{}); err != nil {
			return err
		}
	}
	return nil
}

// LoadIndex reads the contract index. A missing file reads as an empty
// index.
func (s *Store) LoadIndex() (map[string]ContractMeta, error) {
	if !fileExists(s.indexFile) {
		return map[string]ContractMeta{}, nil
	}
	var index map[string]ContractMeta
	if err := readJSON(s.indexFile, &index); err != nil {
		return nil, err
	}
	if index == nil {
		index = map[string]ContractMeta{}
	}
	return index, nil
}

// SaveIndex writes the contract index.
func (s *Store) SaveIndex(index map[string]ContractMeta) error {
	return writeJSON(s.indexFile, index)
}

// NextContractID returns the next sequential contract id, contract_001
// onward.
func (s *Store) NextContractID() (string, error) {
	index, err := s.LoadIndex()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("contract_%03d", len(index)+1), nil
}

// ContractPath resolves a versioned contract file within the contracts
// directory.
func (s *Store) ContractPath(meta ContractMeta) string {
	return filepath.Join(s.contractsDir, meta.File)
}

// AddContract copies an uploaded file into the originals directory and
// registers it in the index with the given v1 filename. The caller is
// responsible for producing the v1 file itself (stamped PDF or plain
// text) in the contracts directory.
func (s *Store) AddContract(srcPath, originalName, v1File string, now time.Time) (string, error) {
	cid, err := s.NextContractID()
	if err != nil {
		return "", err
	}

	origName := fmt.Sprintf("%s-original%s", cid, filepath.Ext(originalName))
	origPath := filepath.Join(s.originalsDir, origName)
	if err := copyFile(srcPath, origPath); err != nil {
		return "", fmt.Errorf("error storing original upload: %w", err)
	}

	index, err := s.LoadIndex()
	if err != nil {
		return "", err
	}
	index[cid] = ContractMeta{
		OriginalFile: origPath,
		File:         v1File,
		Version:      1,
		OriginalName: originalName,
		UploadedAt:   now.Format(time.RFC3339),
		Status:       "Pending Review",
	}
	if err := s.SaveIndex(index); err != nil {
		return "", err
	}
	return cid, nil
}

// OriginalPath returns where AddContract will place (or has placed) the
// original upload for a contract id and source name.
func (s *Store) OriginalPath(cid, originalName string) string {
	return filepath.Join(s.originalsDir, fmt.Sprintf("%s-original%s", cid, filepath.Ext(originalName)))
}

// ContractsDir returns the directory that holds versioned contract files.
func (s *Store) ContractsDir() string {
	return s.contractsDir
}

// RecordVersion bumps a contract to a new version file and timestamps the
// update.
func (s *Store) RecordVersion(cid, file string, now time.Time) error {
	index, err := s.LoadIndex()
	if err != nil {
		return err
	}
	meta, ok := index[cid]
	if !ok {
		return fmt.Errorf("contract id not found in index: %s", cid)
	}
	meta.Version++
	meta.File = file
	meta.LastUpdated = now.Format(time.RFC3339)
	index[cid] = meta
	return s.SaveIndex(index)
}

// SetStatus updates the review status shown on dashboards.
func (s *Store) SetStatus(cid, status string) error {
	index, err := s.LoadIndex()
	if err != nil {
		return err
	}
	meta, ok := index[cid]
	if !ok {
		return fmt.Errorf("contract id not found in index: %s", cid)
	}
	meta.Status = status
	index[cid] = meta
	return s.SaveIndex(index)
}

// LoadRegulations reads the tracked regulation records. External feeds
// have historically written the file either as a JSON array or as an
// id-keyed object; both shapes are accepted and normalized to an ordered
// slice here, so the core only ever sees a slice. Object shapes are
// ordered by key for determinism, and entries missing an embedded id
// inherit their key.
func (s *Store) LoadRegulations() ([]contract.Regulation, error) {
	if !fileExists(s.regsFile) {
		return nil, nil
	}
	data, err := os.ReadFile(s.regsFile)
	if err != nil {
		return nil, fmt.Errorf("error reading regulations file: %w", err)
	}

	var list []contract.Regulation
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var keyed map[string]contract.Regulation
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("regulations file is neither a list nor an id-keyed mapping: %w", err)
	}

	ids := make([]string, 0, len(keyed))
	for id := range keyed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	list = make([]contract.Regulation, 0, len(ids))
	for _, id := range ids {
		reg := keyed[id]
		if reg.ID == "" {
			reg.ID = id
		}
		list = append(list, reg)
	}
	return list, nil
}

// SaveRegulations writes the regulation records as a JSON array, the
// canonical shape going forward.
func (s *Store) SaveRegulations(regs []contract.Regulation) error {
	if regs == nil {
		regs = []contract.Regulation{}
	}
	return writeJSON(s.regsFile, regs)
}

// AppendRegulation adds one regulation to the tracked set.
func (s *Store) AppendRegulation(reg contract.Regulation) error {
	regs, err := s.LoadRegulations()
	if err != nil {
		return err
	}
	return s.SaveRegulations(append(regs, reg))
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(filepath.Clean(src))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(filepath.Clean(dst))
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
