package idgenerator

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	IDLength    = 19
	letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxAttempts = 32
)

var ErrNoFreeID = errors.New("unable to generate unique id")

// Generator produces fixed length alphanumeric ids. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

var defaultGenerator = NewGenerator(time.Now().UnixNano())

func (g *Generator) generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	sb := strings.Builder{}
	sb.Grow(IDLength)
	for i := 0; i < IDLength; i++ {
		sb.WriteByte(letterBytes[g.rnd.Intn(len(letterBytes))])
	}
	return sb.String()
}

// New returns an id for which taken reports false, retrying on collision.
func (g *Generator) New(taken func(id string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		id := g.generate()
		exist, err := taken(id)
		if err != nil {
			return "", errors.Wrap(err, "id collision check failed")
		}
		if !exist {
			return id, nil
		}
	}
	return "", ErrNoFreeID
}

// NewFromSet returns an id missing from existing.
func (g *Generator) NewFromSet(existing map[string]struct{}) (string, error) {
	return g.New(func(id string) (bool, error) {
		_, ok := existing[id]
		return ok, nil
	})
}

func New(taken func(id string) (bool, error)) (string, error) {
	return defaultGenerator.New(taken)
}

func NewFromSet(existing map[string]struct{}) (string, error) {
	return defaultGenerator.NewFromSet(existing)
}
