// Package boltvec implements a persistent vector.Vector on a bolt database bucket.
//
// Layout under the named bucket:
//
//	items/<uint64 big endian index> => encoded element
//	meta/len                        => uint64 big endian length
//	meta/cap                        => uint64 big endian reserved capacity
//
// A Vector caches the length and capacity of its bucket,
// so only one Vector value should work with a given bucket at a time.
package boltvec

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/vectorkit/port/vector"
)

const (
	ErrBucketName  errorkit.Error = "bucket name is empty"
	ErrMissingItem errorkit.Error = "missing item"
)

var (
	itemsBucket = []byte("items")
	metaBucket  = []byte("meta")
	lenKey      = []byte("len")
	capKey      = []byte("cap")
)

const minGrowth = 4

// Vector stores its elements in a bolt bucket.
//
// Operations without an error return value (Push, Reserve, ShrinkToFit, Clear, GetUnchecked, SetUnchecked)
// record their first storage failure, which is reported by Err.
// After that, mutations are skipped and the checked operations return the recorded error.
type Vector[T any] struct {
	db     *bolt.DB
	name   []byte
	owned  bool
	config Config

	length int
	cap    int
	err    error
}

var _ vector.Vector[any, any] = (*Vector[any])(nil)

// Open loads or creates the vector stored under the bucket.
// The caller keeps the ownership of db.
func Open[T any](db *bolt.DB, bucket string, opts ...Option) (*Vector[T], error) {
	if bucket == "" {
		return nil, ErrBucketName
	}
	v := &Vector[T]{
		db:     db,
		name:   []byte(bucket),
		config: option.ToConfig[Config](opts),
	}
	err := db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(v.name)
		if err != nil {
			return err
		}
		if _, err := root.CreateBucketIfNotExists(itemsBucket); err != nil {
			return err
		}
		meta, err := root.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return err
		}
		v.length = int(getUint(meta, lenKey))
		v.cap = int(getUint(meta, capKey))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boltvec: open %q: %w", bucket, err)
	}
	return v, nil
}

// OpenFile opens the bolt database at path, and the vector in it.
// The returned Vector owns the database, and Close will close it.
func OpenFile[T any](path, bucket string, opts ...Option) (*Vector[T], error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("boltvec: open %s: %w", path, err)
	}
	v, err := Open[T](db, bucket, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	v.owned = true
	return v, nil
}

// Close releases the database when the Vector owns it.
func (v *Vector[T]) Close() error {
	if !v.owned {
		return nil
	}
	return v.db.Close()
}

// Err returns the first storage failure of an operation that had no error return value.
func (v *Vector[T]) Err() error { return v.err }

func (v *Vector[T]) Len() int { return v.length }

func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

func (v *Vector[T]) Cap() int { return v.cap }

func (v *Vector[T]) Reserve(additional int) {
	if v.err != nil || additional <= 0 {
		return
	}
	need := v.length + additional
	if need <= v.cap {
		return
	}
	v.record("reserve", v.update(func(b buckets) error {
		return b.putMeta(v.length, need)
	}))
	if v.err == nil {
		v.cap = need
	}
}

// ShrinkToFit drops the reservation beyond the current length.
func (v *Vector[T]) ShrinkToFit() {
	if v.err != nil || v.cap == v.length {
		return
	}
	v.record("shrink", v.update(func(b buckets) error {
		return b.putMeta(v.length, v.length)
	}))
	if v.err == nil {
		v.cap = v.length
	}
}

func (v *Vector[T]) Clear() {
	if v.err != nil {
		return
	}
	v.record("clear", v.db.Update(func(tx *bolt.Tx) error {
		root, err := v.root(tx)
		if err != nil {
			return err
		}
		if err := root.DeleteBucket(itemsBucket); err != nil {
			return err
		}
		if _, err := root.CreateBucket(itemsBucket); err != nil {
			return err
		}
		return putMeta(root.Bucket(metaBucket), 0, v.cap)
	}))
	if v.err == nil {
		v.length = 0
	}
}

func (v *Vector[T]) Push(val T) {
	if v.err != nil {
		return
	}
	data, err := v.encode(val)
	if err != nil {
		v.record("push", err)
		return
	}
	length, capacity := v.length+1, v.grownCap(v.length+1)
	v.record("push", v.update(func(b buckets) error {
		if err := b.items.Put(key(v.length), data); err != nil {
			return err
		}
		return b.putMeta(length, capacity)
	}))
	if v.err == nil {
		v.length, v.cap = length, capacity
	}
}

func (v *Vector[T]) Insert(index int, val T) error {
	if v.err != nil {
		return v.err
	}
	if err := vector.IndexCheck(index, v.length+1); err != nil {
		return err
	}
	data, err := v.encode(val)
	if err != nil {
		return err
	}
	length, capacity := v.length+1, v.grownCap(v.length+1)
	err = v.update(func(b buckets) error {
		for i := v.length; index < i; i-- {
			if err := b.move(i-1, i); err != nil {
				return err
			}
		}
		if err := b.items.Put(key(index), data); err != nil {
			return err
		}
		return b.putMeta(length, capacity)
	})
	if err != nil {
		return fmt.Errorf("boltvec: insert: %w", err)
	}
	v.length, v.cap = length, capacity
	return nil
}

func (v *Vector[T]) Remove(index int) error {
	if v.err != nil {
		return v.err
	}
	if err := vector.IndexCheck(index, v.length); err != nil {
		return err
	}
	length := v.length - 1
	err := v.update(func(b buckets) error {
		for i := index; i < length; i++ {
			if err := b.move(i+1, i); err != nil {
				return err
			}
		}
		if err := b.items.Delete(key(length)); err != nil {
			return err
		}
		return b.putMeta(length, v.cap)
	})
	if err != nil {
		return fmt.Errorf("boltvec: remove: %w", err)
	}
	v.length = length
	return nil
}

func (v *Vector[T]) Swap(i, j int) error {
	if v.err != nil {
		return v.err
	}
	if err := vector.IndexCheck(i, v.length); err != nil {
		return err
	}
	if err := vector.IndexCheck(j, v.length); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	err := v.update(func(b buckets) error {
		a, err := b.get(i)
		if err != nil {
			return err
		}
		c, err := b.get(j)
		if err != nil {
			return err
		}
		if err := b.items.Put(key(i), c); err != nil {
			return err
		}
		return b.items.Put(key(j), a)
	})
	if err != nil {
		return fmt.Errorf("boltvec: swap: %w", err)
	}
	return nil
}

func (v *Vector[T]) Get(index int) (T, error) {
	var zero T
	if v.err != nil {
		return zero, v.err
	}
	if err := vector.IndexCheck(index, v.length); err != nil {
		return zero, err
	}
	val, err := v.read(index)
	if err != nil {
		return zero, fmt.Errorf("boltvec: get: %w", err)
	}
	return val, nil
}

// GetUnchecked reads the element without comparing index to the cached length.
// A missing or undecodable element is recorded as the sticky error, and the zero value is returned.
func (v *Vector[T]) GetUnchecked(index int) T {
	val, err := v.read(index)
	v.record("get", err)
	return val
}

func (v *Vector[T]) Set(index int, val T) error {
	if v.err != nil {
		return v.err
	}
	if err := vector.IndexCheck(index, v.length); err != nil {
		return err
	}
	if err := v.write(index, val); err != nil {
		return fmt.Errorf("boltvec: set: %w", err)
	}
	return nil
}

func (v *Vector[T]) SetUnchecked(index int, val T) {
	if v.err != nil {
		return
	}
	v.record("set", v.write(index, val))
}

func (v *Vector[T]) read(index int) (T, error) {
	var val T
	err := v.db.View(func(tx *bolt.Tx) error {
		b, err := v.buckets(tx)
		if err != nil {
			return err
		}
		data := b.items.Get(key(index))
		if data == nil {
			return fmt.Errorf("%w: index %d", ErrMissingItem, index)
		}
		return v.config.Codec.Unmarshal(data, &val)
	})
	return val, err
}

func (v *Vector[T]) write(index int, val T) error {
	data, err := v.encode(val)
	if err != nil {
		return err
	}
	return v.update(func(b buckets) error {
		return b.items.Put(key(index), data)
	})
}

func (v *Vector[T]) encode(val T) ([]byte, error) {
	data, err := v.config.Codec.Marshal(val)
	if err != nil {
		return nil, fmt.Errorf("boltvec: encode: %w", err)
	}
	return data, nil
}

func (v *Vector[T]) grownCap(need int) int {
	if need <= v.cap {
		return v.cap
	}
	return max(need, v.cap*2, minGrowth)
}

// record keeps the first failure and logs it.
func (v *Vector[T]) record(op string, err error) {
	if err == nil || v.err != nil {
		return
	}
	v.err = err
	v.config.Logger.Error(context.Background(), "boltvec operation failed",
		logging.Field("op", op),
		logging.Field("bucket", string(v.name)),
		logging.ErrField(err))
}

func (v *Vector[T]) root(tx *bolt.Tx) (*bolt.Bucket, error) {
	root := tx.Bucket(v.name)
	if root == nil {
		return nil, fmt.Errorf("boltvec: bucket %q not found", v.name)
	}
	return root, nil
}

func (v *Vector[T]) buckets(tx *bolt.Tx) (buckets, error) {
	root, err := v.root(tx)
	if err != nil {
		return buckets{}, err
	}
	return buckets{items: root.Bucket(itemsBucket), meta: root.Bucket(metaBucket)}, nil
}

func (v *Vector[T]) update(fn func(b buckets) error) error {
	return v.db.Update(func(tx *bolt.Tx) error {
		b, err := v.buckets(tx)
		if err != nil {
			return err
		}
		return fn(b)
	})
}

type buckets struct {
	items *bolt.Bucket
	meta  *bolt.Bucket
}

// get returns a copy of the stored bytes, so it can be written back within the same transaction.
func (b buckets) get(index int) ([]byte, error) {
	data := b.items.Get(key(index))
	if data == nil {
		return nil, fmt.Errorf("%w: index %d", ErrMissingItem, index)
	}
	return bytes.Clone(data), nil
}

func (b buckets) move(from, to int) error {
	data, err := b.get(from)
	if err != nil {
		return err
	}
	return b.items.Put(key(to), data)
}

func (b buckets) putMeta(length, capacity int) error {
	return putMeta(b.meta, length, capacity)
}

func putMeta(meta *bolt.Bucket, length, capacity int) error {
	if err := meta.Put(lenKey, uintToBytes(uint64(length))); err != nil {
		return err
	}
	return meta.Put(capKey, uintToBytes(uint64(capacity)))
}

func getUint(b *bolt.Bucket, k []byte) uint64 {
	data := b.Get(k)
	if len(data) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(data)
}

func key(index int) []byte { return uintToBytes(uint64(index)) }

// uintToBytes returns an 8-byte big endian representation of v.
func uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
