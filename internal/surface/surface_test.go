package surface

import (
	"context"
	"testing"

	"github.com/taskerhq/tasker/internal/storage"
	"github.com/taskerhq/tasker/internal/store"
)

func TestFromContextPanicsWithoutProvider(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromContext should panic outside a provider scope")
		}
	}()
	FromContext(context.Background())
}

func TestFromContextReturnsSurface(t *testing.T) {
	s := store.New(storage.NewFileBackend(t.TempDir()), nil)
	srf := New(s)
	ctx := NewContext(context.Background(), srf)

	got := FromContext(ctx)
	if got != srf {
		t.Error("FromContext returned a different surface")
	}
}

func TestSurfaceExposesStoreOperations(t *testing.T) {
	s := store.New(storage.NewFileBackend(t.TempDir()), nil)
	ctx := NewContext(context.Background(), New(s))

	srf := FromContext(ctx)
	created := srf.AddTask(store.TaskInput{Title: "Via surface"})
	srf.ToggleTaskCompletion(created.ID)

	tasks := srf.Tasks()
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Errorf("tasks = %+v, want one completed task", tasks)
	}
	if len(srf.Categories()) != 4 {
		t.Errorf("categories = %d, want the 4 defaults", len(srf.Categories()))
	}
}
