package lifecycle_test

import (
	"errors"
	"testing"

	"github.com/darksailstudio/resettables/codec"
	"github.com/darksailstudio/resettables/core"
	"github.com/darksailstudio/resettables/internal/testutil"
	"github.com/darksailstudio/resettables/lifecycle"
	"github.com/darksailstudio/resettables/snapshot"
	"github.com/darksailstudio/resettables/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Draft is explicitly marked inheritable, Sketch inherits resettable
// semantics from it, Ledger is persistent but never marked.
func newCatalog() core.TypeCatalog {
	return testutil.NewCatalogBuilder().
		Abstract("Node", "").
		Marked("Draft", "Node", true).
		Concrete("Sketch", "Draft").
		Concrete("Ledger", "Node").
		Build()
}

type fixture struct {
	ctrl    *lifecycle.Controller
	objects *store.InMemoryStore
	kv      *snapshot.MemoryKV
}

func newFixture(t *testing.T, c core.Codec) *fixture {
	t.Helper()
	if c == nil {
		c = codec.JSON{}
	}
	objects := store.NewInMemoryStore()
	kv := snapshot.NewMemoryKV()
	ctrl := lifecycle.New(lifecycle.Options{
		ObjectStore: objects,
		Catalog:     newCatalog(),
		SnapshotKV:  kv,
		Codec:       c,
	})
	return &fixture{ctrl: ctrl, objects: objects, kv: kv}
}

// deleteObject routes a deletion through the interception hook the way host
// integration code does: record first, then perform the store delete.
func (f *fixture) deleteObject(t *testing.T, loc core.Location) {
	t.Helper()
	f.ctrl.OnDelete(loc)
	existed, err := f.objects.Delete(loc)
	require.NoError(t, err)
	require.True(t, existed)
}

func (f *fixture) value(t *testing.T, loc core.Location) any {
	t.Helper()
	inst, err := f.objects.Load(loc)
	require.NoError(t, err)
	require.NotNil(t, inst, "expected an object at %q", loc)
	return inst.Fields()["value"]
}

func (f *fixture) setValue(t *testing.T, loc core.Location, value any) {
	t.Helper()
	inst, err := f.objects.Load(loc)
	require.NoError(t, err)
	require.NotNil(t, inst)
	inst.(*store.Object).Set("value", value)
}

func TestEndSession_RestoresMutatedState(t *testing.T) {
	for name, c := range map[string]core.Codec{"json": codec.JSON{}, "cbor": codec.CBOR{}} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, c)
			testutil.NewObjectBuilder("Draft", "/d1").Field("value", 100).MustCreate(t, f.objects)
			testutil.NewObjectBuilder("Ledger", "/l1").Field("value", 100).MustCreate(t, f.objects)

			require.NoError(t, f.ctrl.BeginSession())
			f.setValue(t, "/d1", 200)
			f.setValue(t, "/l1", 200)
			require.NoError(t, f.ctrl.EndSession())

			assert.EqualValues(t, 100, f.value(t, "/d1"), "resettable object reverts")
			assert.EqualValues(t, 200, f.value(t, "/l1"), "non-resettable object keeps mutations")
		})
	}
}

func TestEndSession_RestoresInheritedTypes(t *testing.T) {
	f := newFixture(t, nil)
	testutil.NewObjectBuilder("Sketch", "/s1").Field("value", 100).MustCreate(t, f.objects)

	require.NoError(t, f.ctrl.BeginSession())
	f.setValue(t, "/s1", 200)
	require.NoError(t, f.ctrl.EndSession())

	assert.EqualValues(t, 100, f.value(t, "/s1"))
}

func TestEndSession_DiscardsObjectsCreatedDuringSession(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.ctrl.BeginSession())
	testutil.NewObjectBuilder("Draft", "/d1").Field("value", 1).MustCreate(t, f.objects)
	testutil.NewObjectBuilder("Ledger", "/l1").Field("value", 1).MustCreate(t, f.objects)
	require.NoError(t, f.ctrl.EndSession())

	gone, err := f.objects.Load("/d1")
	require.NoError(t, err)
	assert.Nil(t, gone, "resettable object created during the session is discarded")

	kept, err := f.objects.Load("/l1")
	require.NoError(t, err)
	assert.NotNil(t, kept, "non-resettable object created during the session persists")
}

func TestEndSession_RecreatesObjectsDeletedDuringSession(t *testing.T) {
	f := newFixture(t, nil)
	testutil.NewObjectBuilder("Draft", "/d1").Field("value", 100).MustCreate(t, f.objects)
	testutil.NewObjectBuilder("Ledger", "/l1").Field("value", 100).MustCreate(t, f.objects)

	require.NoError(t, f.ctrl.BeginSession())
	f.deleteObject(t, "/d1")
	f.deleteObject(t, "/l1")
	require.NoError(t, f.ctrl.EndSession())

	recreated, err := f.objects.Load("/d1")
	require.NoError(t, err)
	require.NotNil(t, recreated, "resettable deletion is undone")
	assert.EqualValues(t, 100, recreated.Fields()["value"])
	assert.Equal(t, core.TypeName("Draft"), recreated.Ref().Type)

	stillGone, err := f.objects.Load("/l1")
	require.NoError(t, err)
	assert.Nil(t, stillGone, "non-resettable deletion remains deleted")
}

func TestEndSession_RecreateOverridesMutationAndDeletion(t *testing.T) {
	f := newFixture(t, nil)
	testutil.NewObjectBuilder("Draft", "/d1").Field("value", 100).MustCreate(t, f.objects)

	require.NoError(t, f.ctrl.BeginSession())
	f.setValue(t, "/d1", 200)
	f.deleteObject(t, "/d1")
	require.NoError(t, f.ctrl.EndSession())

	assert.EqualValues(t, 100, f.value(t, "/d1"), "snapshot overrides both mutation and deletion")
}

func TestEndSession_SecondEndIsNoOp(t *testing.T) {
	f := newFixture(t, nil)
	testutil.NewObjectBuilder("Draft", "/d1").Field("value", 100).MustCreate(t, f.objects)

	require.NoError(t, f.ctrl.BeginSession())
	f.setValue(t, "/d1", 200)
	require.NoError(t, f.ctrl.EndSession())

	assert.Equal(t, 0, f.kv.Len(), "snapshot store is fully drained")
	assert.Equal(t, 0, f.ctrl.Tracker().Len(), "delete tracker is empty")
	assert.False(t, f.ctrl.Active())

	// Mutations after the session must survive a stray end signal.
	f.setValue(t, "/d1", 300)
	require.NoError(t, f.ctrl.EndSession())
	assert.EqualValues(t, 300, f.value(t, "/d1"))
}

func TestBeginSession_WhileActiveIgnored(t *testing.T) {
	f := newFixture(t, nil)
	testutil.NewObjectBuilder("Draft", "/d1").Field("value", 100).MustCreate(t, f.objects)

	require.NoError(t, f.ctrl.BeginSession())
	f.setValue(t, "/d1", 200)
	require.NoError(t, f.ctrl.BeginSession(), "double start is guarded, not fatal")
	require.NoError(t, f.ctrl.EndSession())

	// No double capture: the restore uses the first session's snapshot.
	assert.EqualValues(t, 100, f.value(t, "/d1"))
}

func TestOnDelete_OutsideSessionNotTracked(t *testing.T) {
	f := newFixture(t, nil)
	testutil.NewObjectBuilder("Draft", "/d1").Field("value", 100).MustCreate(t, f.objects)

	f.deleteObject(t, "/d1")
	assert.Equal(t, 0, f.ctrl.Tracker().Len())

	require.NoError(t, f.ctrl.BeginSession())
	require.NoError(t, f.ctrl.EndSession())

	gone, err := f.objects.Load("/d1")
	require.NoError(t, err)
	assert.Nil(t, gone, "pre-session deletion is not undone")
}

func TestOnDelete_NonResettableNotTracked(t *testing.T) {
	f := newFixture(t, nil)
	testutil.NewObjectBuilder("Ledger", "/l1").MustCreate(t, f.objects)

	require.NoError(t, f.ctrl.BeginSession())
	f.ctrl.OnDelete("/l1")
	assert.Equal(t, 0, f.ctrl.Tracker().Len())
	require.NoError(t, f.ctrl.EndSession())
}

// flakyCodec fails decoding for one identity, standing in for a
// serialization error mid-restore.
type flakyCodec struct {
	core.Codec
	failOn core.ObjectID
}

func (f flakyCodec) Decode(inst core.Instance, state string) error {
	if inst.Ref().ID == f.failOn {
		return errors.New("decode failure")
	}
	return f.Codec.Decode(inst, state)
}

func TestEndSession_ClearsTrackerDespiteRestoreError(t *testing.T) {
	f := newFixture(t, nil)
	bad := testutil.NewObjectBuilder("Draft", "/a").Field("value", 1).MustCreate(t, f.objects)
	testutil.NewObjectBuilder("Draft", "/b").Field("value", 1).MustCreate(t, f.objects)

	objects := f.objects
	kv := f.kv
	ctrl := lifecycle.New(lifecycle.Options{
		ObjectStore: objects,
		Catalog:     newCatalog(),
		SnapshotKV:  kv,
		Codec:       flakyCodec{Codec: codec.JSON{}, failOn: bad.Ref().ID},
	})

	require.NoError(t, ctrl.BeginSession())
	f.setValue(t, "/a", 2)
	f.setValue(t, "/b", 2)
	ctrl.OnDelete("/b")
	objects.Delete("/b")

	err := ctrl.EndSession()
	require.Error(t, err, "a per-object restore failure propagates")

	assert.Equal(t, 0, ctrl.Tracker().Len(), "tracker clearing is unconditional")
	assert.False(t, ctrl.Active(), "the session still transitions to inactive")

	// The failed entry was consumed before its action ran, so a retry could
	// never double-restore it.
	_, ok, consumeErr := snapshot.NewStore(kv).Consume(bad.Ref().ID)
	require.NoError(t, consumeErr)
	assert.False(t, ok)
}

// sentinelCodec captures every object as the empty string and marks decoded
// instances, distinguishing a reset from a skip or discard.
type sentinelCodec struct{}

func (sentinelCodec) Encode(core.Instance) (string, error) { return "", nil }

func (sentinelCodec) Decode(inst core.Instance, state string) error {
	inst.SetFields(map[string]any{"restored": true})
	return nil
}

func TestEndSession_EmptyCaptureStillResets(t *testing.T) {
	f := newFixture(t, sentinelCodec{})
	testutil.NewObjectBuilder("Draft", "/d1").Field("value", 100).MustCreate(t, f.objects)

	require.NoError(t, f.ctrl.BeginSession())
	f.setValue(t, "/d1", 200)
	require.NoError(t, f.ctrl.EndSession())

	inst, err := f.objects.Load("/d1")
	require.NoError(t, err)
	require.NotNil(t, inst, "an empty capture must not read as a discard")
	assert.Equal(t, true, inst.Fields()["restored"])
}

func TestEndSession_EmptyCaptureStillRecreates(t *testing.T) {
	f := newFixture(t, sentinelCodec{})
	testutil.NewObjectBuilder("Draft", "/d1").MustCreate(t, f.objects)

	require.NoError(t, f.ctrl.BeginSession())
	f.deleteObject(t, "/d1")
	require.NoError(t, f.ctrl.EndSession())

	inst, err := f.objects.Load("/d1")
	require.NoError(t, err)
	require.NotNil(t, inst, "an empty capture must not read as missing")
	assert.Equal(t, true, inst.Fields()["restored"])
}
