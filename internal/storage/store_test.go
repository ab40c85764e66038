// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-scan/internal/config"
	"contract-scan/internal/contract"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Storage.DataDir = dir
	cfg.Storage.ContractsDir = filepath.Join(dir, "contracts")
	cfg.Storage.OriginalsDir = filepath.Join(dir, "contracts", "originals")
	cfg.Storage.RegulationsFile = filepath.Join(dir, "regulations.json")
	cfg.Storage.IndexFile = filepath.Join(dir, "contracts_index.json")

	s := NewStore(cfg)
	require.NoError(t, s.EnsureDirs())
	return s
}

func TestEnsureDirs_SeedsEmptyFiles(t *testing.T) {
	s := newTestStore(t)

	index, err := s.LoadIndex()
	require.NoError(t, err)
	assert.Empty(t, index)

	regs, err := s.LoadRegulations()
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestNextContractID_Sequential(t *testing.T) {
	s := newTestStore(t)

	id, err := s.NextContractID()
	require.NoError(t, err)
	assert.Equal(t, "contract_001", id)

	index, err := s.LoadIndex()
	require.NoError(t, err)
	index["contract_001"] = ContractMeta{File: "contract_001-v1.txt", Version: 1}
	require.NoError(t, s.SaveIndex(index))

	id, err = s.NextContractID()
	require.NoError(t, err)
	assert.Equal(t, "contract_002", id)
}

func TestAddContractAndRecordVersion(t *testing.T) {
	s := newTestStore(t)

	src := filepath.Join(t.TempDir(), "nda.txt")
	require.NoError(t, os.WriteFile(src, []byte("CONFIDENTIALITY\nKeep it secret."), 0600))

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	cid, err := s.AddContract(src, "nda.txt", "contract_001-v1.txt", now)
	require.NoError(t, err)
	assert.Equal(t, "contract_001", cid)

	// Original preserved byte-for-byte
	orig, err := os.ReadFile(s.OriginalPath(cid, "nda.txt"))
	require.NoError(t, err)
	assert.Equal(t, "CONFIDENTIALITY\nKeep it secret.", string(orig))

	index, err := s.LoadIndex()
	require.NoError(t, err)
	meta := index[cid]
	assert.Equal(t, 1, meta.Version)
	assert.Equal(t, "nda.txt", meta.OriginalName)
	assert.Equal(t, "Pending Review", meta.Status)

	require.NoError(t, s.RecordVersion(cid, "contract_001-v2.txt", now.Add(time.Hour)))
	index, err = s.LoadIndex()
	require.NoError(t, err)
	meta = index[cid]
	assert.Equal(t, 2, meta.Version)
	assert.Equal(t, "contract_001-v2.txt", meta.File)
	assert.NotEmpty(t, meta.LastUpdated)
}

func TestRecordVersion_UnknownID(t *testing.T) {
	s := newTestStore(t)
	err := s.RecordVersion("contract_999", "x.txt", time.Now())
	assert.Error(t, err)
}

func TestLoadRegulations_ListShape(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveRegulations([]contract.Regulation{
		{ID: "r1", Title: "First", Keywords: []string{"privacy"}},
		{ID: "r2", Title: "Second"},
	}))

	regs, err := s.LoadRegulations()
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "First", regs[0].Title)
	assert.Equal(t, "Second", regs[1].Title)
}

func TestLoadRegulations_MapShapeNormalized(t *testing.T) {
	s := newTestStore(t)
	raw := `{
  "reg_b": {"title": "Beta Rule", "keywords": ["transfer"]},
  "reg_a": {"id": "explicit", "title": "Alpha Rule"}
}`
	require.NoError(t, os.WriteFile(s.regsFile, []byte(raw), 0600))

	regs, err := s.LoadRegulations()
	require.NoError(t, err)
	require.Len(t, regs, 2)

	// Key order is sorted for determinism; missing ids inherit the key.
	assert.Equal(t, "explicit", regs[0].ID)
	assert.Equal(t, "Alpha Rule", regs[0].Title)
	assert.Equal(t, "reg_b", regs[1].ID)
	assert.Equal(t, "Beta Rule", regs[1].Title)
}

func TestLoadRegulations_GarbageFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.regsFile, []byte("not json"), 0600))
	_, err := s.LoadRegulations()
	assert.Error(t, err)
}

func TestAppendRegulation(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendRegulation(contract.Regulation{ID: "r1", Title: "T"}))
	require.NoError(t, s.AppendRegulation(contract.Regulation{ID: "r2", Title: "U"}))

	regs, err := s.LoadRegulations()
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "r1", regs[0].ID)
	assert.Equal(t, "r2", regs[1].ID)
}
