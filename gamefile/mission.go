package gamefile

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/arloliu/citysave/endian"
	"github.com/arloliu/citysave/errs"
	"github.com/arloliu/citysave/format"
)

// missionSnapshotNames are the per-rank snapshot file names, indexed by mission id.
var missionSnapshotNames = [format.MissionCount]string{
	"Citizen.sav",
	"Clerk.sav",
	"Engineer.sav",
	"Architect.sav",
	"Quaestor.sav",
	"Procurator.sav",
	"Aedile.sav",
	"Praetor.sav",
	"Consul.sav",
	"Proconsul.sav",
	"Caesar.sav",
	"Caesar2.sav",
}

// MissionSnapshotName returns the snapshot file name for a mission id,
// clamping out-of-range ids to the first or last mission.
func MissionSnapshotName(missionID int32) string {
	return missionSnapshotNames[clampMission(missionID)]
}

func clampMission(id int32) int32 {
	if id < 0 {
		return 0
	}
	if id >= format.MissionCount {
		return format.MissionCount - 1
	}

	return id
}

// LoadSavegameFromMissionPack loads the embedded savegame of a campaign mission.
//
// The pack starts with an index of int32 offsets, one per mission. An entry
// that is zero, negative or missing fails with ErrMissionNotFound. Unlike
// LoadSavegame this does not stop the music, reset storage building ids or
// copy the player name.
func (e *Engine) LoadSavegameFromMissionPack(missionID int) (*Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	path := e.missionPackPath()
	report, err := e.loadMission(path, missionID)
	e.finish(opLoadMission, path, start, report, err)

	return report, err
}

func (e *Engine) loadMission(path string, missionID int) (*Report, error) {
	if missionID < 0 || missionID >= format.MissionCount {
		return nil, errors.Wrapf(errs.ErrInvalidMission, "mission %d", missionID)
	}

	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	offset, err := missionOffset(f, missionID)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s", path)
	}
	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seek %s to %d", path, offset)
	}
	e.logger.Debug().Int("mission", missionID).Int32("offset", offset).Msg("reading mission savegame")

	report, err := e.readSavegame(bufio.NewReader(f), opLoadMission, path)
	if err != nil {
		return report, errors.WithMessagef(err, "load mission %d from %s", missionID, path)
	}

	return report, nil
}

// missionOffset reads the pack index entry of a mission.
func missionOffset(r io.ReaderAt, missionID int) (int32, error) {
	var entry [4]byte
	if _, err := r.ReadAt(entry[:], int64(4*missionID)); err != nil {
		return 0, errors.Wrapf(errs.ErrMissionNotFound, "mission %d: index entry: %v", missionID, err)
	}
	offset := int32(endian.Wire().Uint32(entry[:]))
	if offset <= 0 {
		return 0, errors.Wrapf(errs.ErrMissionNotFound, "mission %d: offset %d", missionID, offset)
	}

	return offset, nil
}

// PutMissionIndex encodes a mission pack index of offsets.
func PutMissionIndex(offsets []int32) []byte {
	b := make([]byte, 0, 4*len(offsets))
	for _, o := range offsets {
		b = endian.Wire().AppendUint32(b, uint32(o))
	}

	return b
}

// WriteMissionSavegameIfNeeded writes the per-mission snapshot once per
// session. It returns true when a file was written.
//
// The session flag is set on the first call whether or not a file is
// written, and an existing snapshot is never overwritten.
func (e *Engine) WriteMissionSavegameIfNeeded() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.state
	if s.Session.MissionSavedGameWritten {
		return false, nil
	}
	s.Session.MissionSavedGameWritten = true

	path := filepath.Join(e.dataDir, MissionSnapshotName(s.Settings.CurrentMissionID))
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, errors.Wrapf(err, "stat %s", path)
	}

	start := time.Now()
	report, err := e.writeSavegameFile(path)
	e.finish(opSaveSavegame, path, start, report, err)
	if err != nil {
		return false, err
	}

	return true, nil
}
