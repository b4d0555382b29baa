// Package observable provides boxed values and lists that notify listeners
// whenever they change.
//
// # Values
//
// Value holds a current and an initial value of a single type:
//
//	health := observable.NewInt(100)
//	unsub := health.AddListener(func(v int) {
//	    fmt.Println("health:", v)
//	})
//	health.Set(80) // prints "health: 80"
//	health.Reset() // prints "health: 100"
//	unsub()
//
// Set always notifies, even when the new value equals the old one.
//
// # Lists
//
// List wraps a slice behind an Items proxy. Every structural change made
// through the list or its proxy (SetAt, Add, Insert, Remove, RemoveAt,
// Clear) notifies listeners exactly once after the change is applied:
//
//	flags := observable.NewBoolList(true, true, false)
//	flags.AddListener(func(items *observable.Items[bool]) {
//	    fmt.Println(items.Slice())
//	})
//	flags.Add(false) // prints "[true true false false]"
//
// The typed lists (BoolList, IntList, FloatList, StringList, Vec2List,
// Vec3List) add reductions over the current contents.
//
// # Text and dynamic bridging
//
// Every value and list implements Model, which lets tools edit a model
// without knowing its element type: String/SetString convert through the
// element Codec and Object/SetObject box through any.
//
// # Threading
//
// Nothing in this package is safe for concurrent use. Listeners run
// synchronously on the caller's goroutine, in registration order, before
// Set or the list mutation returns.
package observable
