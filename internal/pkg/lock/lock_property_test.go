// Property-based tests for concurrent score mutation safety.
package lock

import (
	"fmt"
	"sync"
	"testing"

	"pgregory.net/rapid"
)

// TestConcurrentDeltaSafetyProperty verifies that for any set of concurrent
// point deltas applied to the same user under the lock, the final value is
// consistent with sequential execution of all operations.
func TestConcurrentDeltaSafetyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.IntRange(0, 10000).Draw(t, "initial")
		numOps := rapid.IntRange(2, 20).Draw(t, "numOps")

		deltas := make([]int, numOps)
		expected := initial
		for i := range deltas {
			deltas[i] = rapid.IntRange(-50, 50).Draw(t, "delta")
			expected += deltas[i]
		}

		userID := fmt.Sprintf("%d", rapid.Int64Range(1, 1_000_000).Draw(t, "userID"))

		ul := NewUserLock()
		value := initial

		var wg sync.WaitGroup
		wg.Add(numOps)
		for _, d := range deltas {
			go func(delta int) {
				defer wg.Done()
				ul.Lock(userID)
				defer ul.Unlock(userID)
				// read-modify-write under the lock
				v := value
				value = v + delta
			}(d)
		}
		wg.Wait()

		if value != expected {
			t.Fatalf("final value %d != expected %d", value, expected)
		}
	})
}

// TestTryLockExclusionProperty verifies that TryLock fails while the lock is
// held and succeeds after release.
func TestTryLockExclusionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		userID := fmt.Sprintf("u%d", rapid.IntRange(0, 1000).Draw(t, "userID"))

		ul := NewUserLock()
		ul.Lock(userID)
		if ul.TryLock(userID) {
			t.Fatal("TryLock succeeded while lock held")
		}
		ul.Unlock(userID)
		if !ul.TryLock(userID) {
			t.Fatal("TryLock failed on released lock")
		}
		ul.Unlock(userID)
	})
}

// TestDistinctUsersIndependent verifies locks on distinct users do not block
// each other.
func TestDistinctUsersIndependent(t *testing.T) {
	ul := NewUserLock()
	ul.Lock("alice")
	defer ul.Unlock("alice")

	if !ul.TryLock("bob") {
		t.Fatal("lock on a different user should be free")
	}
	ul.Unlock("bob")
}
