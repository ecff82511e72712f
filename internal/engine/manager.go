// Package engine drives the chunk lifecycle for a client world session:
// which chunks exist, which are visible, and how fast queued terrain
// materializes into renderable blocks.
package engine

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"voxelengine/internal/config"
	"voxelengine/internal/render"
	"voxelengine/internal/terrain"
	"voxelengine/internal/world"
)

// Planner produces deterministic placement plans for chunks.
type Planner interface {
	Plan(coord world.ChunkCoord) (*terrain.Plan, error)
}

// pendingGen tracks a chunk whose plan is materializing across frames. The
// cursor marks the next placement to apply, so the per-frame block budget is
// a hard bound even mid-chunk.
type pendingGen struct {
	plan   *terrain.Plan
	cursor int
}

// Manager owns all chunk state for one world session.
type Manager struct {
	cfg   *config.Config
	alloc *render.Allocator
	gen   Planner

	chunks  map[world.ChunkCoord]*world.Chunk
	pending map[world.ChunkCoord]*pendingGen
	queue   *genQueue

	playerChunk world.ChunkCoord
	initialized bool

	windowStart  time.Time
	windowUsed   int
	lastEviction time.Time
	now          func() time.Time
}

func New(cfg *config.Config, scene render.Scene) *Manager {
	return &Manager{
		cfg:     cfg,
		alloc:   render.NewAllocator(scene, cfg.Render.InstanceCapacity),
		gen:     terrain.NewGenerator(cfg.Terrain, cfg.World),
		chunks:  make(map[world.ChunkCoord]*world.Chunk),
		pending: make(map[world.ChunkCoord]*pendingGen),
		queue:   newGenQueue(),
		now:     time.Now,
	}
}

// InitChunks seeds the visible set around the player's starting position.
// The nearest chunks generate synchronously so the player never spawns into
// empty space; the rest enter the generation queue.
func (m *Manager) InitChunks(pos mgl32.Vec3) {
	m.initialized = true
	m.playerChunk = chunkForPos(pos)
	m.windowStart = m.now()
	m.lastEviction = m.now()
	m.refreshVisible(m.playerChunk)
	m.ensureFallback()
}

// Update advances the lifecycle by one frame. The visible set is only
// recomputed when the player crosses a chunk boundary; the generation queue
// and the eviction timer run every frame regardless.
func (m *Manager) Update(pos mgl32.Vec3) {
	if !m.initialized {
		m.InitChunks(pos)
		return
	}

	if pc := chunkForPos(pos); pc != m.playerChunk {
		m.playerChunk = pc
		m.refreshVisible(pc)
	}

	m.processQueue()

	if m.now().Sub(m.lastEviction) >= m.cfg.Lifecycle.EvictionInterval.Duration() {
		m.unloadDistant()
		m.lastEviction = m.now()
	}
	m.ensureFallback()
}

func chunkForPos(pos mgl32.Vec3) world.ChunkCoord {
	return world.ChunkAt(
		int(math.Floor(float64(pos.X()))),
		int(math.Floor(float64(pos.Y()))),
	)
}

type candidate struct {
	coord world.ChunkCoord
	dist  float64
}

// refreshVisible recomputes the visible chunk set around the player chunk.
// Candidates come from the square of side 2*RenderDistance+1; the nearest by
// Euclidean distance win when MaxVisibleChunks truncates the set.
func (m *Manager) refreshVisible(center world.ChunkCoord) {
	rd := m.cfg.Lifecycle.RenderDistance
	cands := make([]candidate, 0, (2*rd+1)*(2*rd+1))
	for dy := -rd; dy <= rd; dy++ {
		for dx := -rd; dx <= rd; dx++ {
			cands = append(cands, candidate{
				coord: world.ChunkCoord{X: center.X + dx, Y: center.Y + dy},
				dist:  math.Hypot(float64(dx), float64(dy)),
			})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	if max := m.cfg.Lifecycle.MaxVisibleChunks; len(cands) > max {
		cands = cands[:max]
	}

	visible := make(map[world.ChunkCoord]bool, len(cands))
	for i, cand := range cands {
		visible[cand.coord] = true
		priority := 1000 - int(cand.dist*100)

		if ch, ok := m.chunks[cand.coord]; ok {
			ch.Priority = priority
			if !ch.Visible {
				m.showChunk(ch)
			}
			continue
		}

		ch := world.NewChunk(cand.coord)
		ch.Priority = priority
		ch.Visible = true
		m.chunks[cand.coord] = ch

		if i < m.cfg.Lifecycle.SyncChunks {
			if err := m.generateNow(ch); err != nil {
				log.Printf("world: generate chunk %v: %v", cand.coord, err)
			}
		} else {
			m.enqueue(ch)
		}
	}

	for coord, ch := range m.chunks {
		if ch.Visible && !visible[coord] {
			m.hideChunk(ch)
		}
	}
}

// generateNow materializes a chunk's full plan immediately, outside the
// frame budget. Used for the chunks directly under the player.
func (m *Manager) generateNow(ch *world.Chunk) error {
	if ch.Generated {
		return nil
	}
	plan, err := m.gen.Plan(ch.Coord)
	if err != nil {
		return err
	}
	for _, p := range plan.Placements {
		m.createBlock(ch, p.Pos, p.Type)
	}
	ch.Generated = true
	delete(m.pending, ch.Coord)
	return nil
}

func (m *Manager) enqueue(ch *world.Chunk) {
	if ch.Generated {
		return
	}
	if _, ok := m.pending[ch.Coord]; !ok {
		m.pending[ch.Coord] = &pendingGen{}
	}
	m.queue.push(ch.Coord, ch.Priority)
}

// processQueue materializes queued chunks under the per-window block budget.
// A chunk whose plan does not finish within the budget keeps its cursor and
// returns to the queue for the next frame.
func (m *Manager) processQueue() {
	now := m.now()
	if now.Sub(m.windowStart) >= m.cfg.Lifecycle.FrameWindow.Duration() {
		m.windowStart = now
		m.windowUsed = 0
	}

	budget := m.cfg.Lifecycle.MaxBlocksPerFrame
	for m.windowUsed < budget {
		item, ok := m.queue.pop()
		if !ok {
			return
		}

		ch, loaded := m.chunks[item.coord]
		pend := m.pending[item.coord]
		if !loaded || pend == nil || ch.Generated {
			delete(m.pending, item.coord)
			continue
		}
		if !ch.Visible {
			// Re-enqueued when the chunk is shown again.
			continue
		}

		if pend.plan == nil {
			plan, err := m.gen.Plan(item.coord)
			if err != nil {
				log.Printf("world: generate chunk %v: %v", item.coord, err)
				delete(m.pending, item.coord)
				continue
			}
			pend.plan = plan
		}

		for pend.cursor < len(pend.plan.Placements) && m.windowUsed < budget {
			p := pend.plan.Placements[pend.cursor]
			pend.cursor++
			if m.createBlock(ch, p.Pos, p.Type) {
				m.windowUsed++
			}
		}

		if pend.cursor >= len(pend.plan.Placements) {
			ch.Generated = true
			delete(m.pending, item.coord)
			continue
		}
		m.queue.push(item.coord, ch.Priority)
		return
	}
}

// createBlock materializes one block: world entry plus render resources.
// AIR, out-of-chunk positions and occupied cells are no-ops.
func (m *Manager) createBlock(ch *world.Chunk, pos world.BlockCoord, t world.BlockType) bool {
	if t == world.Air || !ch.Contains(pos) {
		return false
	}
	if _, exists := ch.Get(pos); exists {
		return false
	}
	h := m.alloc.Create(pos, t)
	if !ch.Visible {
		m.alloc.SetVisible(h, false)
	}
	ch.Put(world.Block{Type: t, Pos: pos, Render: h})
	return true
}

func (m *Manager) showChunk(ch *world.Chunk) {
	ch.Visible = true
	for _, b := range ch.Blocks {
		m.alloc.SetVisible(b.Render, true)
	}
	if _, ok := m.pending[ch.Coord]; ok {
		m.queue.push(ch.Coord, ch.Priority)
	}
}

func (m *Manager) hideChunk(ch *world.Chunk) {
	ch.Visible = false
	for _, b := range ch.Blocks {
		m.alloc.SetVisible(b.Render, false)
	}
}

// unloadDistant evicts chunks outside the retention ring or hidden by the
// last visible-set refresh. Instanced slots return to their batch free list;
// individual objects detach from the scene.
func (m *Manager) unloadDistant() {
	limit := m.cfg.Lifecycle.RenderDistance + 1
	for coord, ch := range m.chunks {
		if ch.Visible && world.Chebyshev(coord, m.playerChunk) <= limit {
			continue
		}
		for _, b := range ch.Blocks {
			m.alloc.Remove(b.Render)
		}
		delete(m.chunks, coord)
		delete(m.pending, coord)
	}
}

// ensureFallback guarantees at least one resident chunk so the world is
// never completely empty.
func (m *Manager) ensureFallback() {
	if len(m.chunks) > 0 {
		return
	}
	ch := world.NewChunk(world.ChunkCoord{})
	ch.Visible = true
	m.chunks[ch.Coord] = ch
	if err := m.generateNow(ch); err != nil {
		log.Printf("world: generate fallback chunk: %v", err)
	}
}

// PlaceBlock inserts a player-placed block. It reports false for AIR, for
// positions in unloaded chunks and for occupied cells.
func (m *Manager) PlaceBlock(x, y, z int, t world.BlockType) bool {
	if t == world.Air || z < 0 {
		return false
	}
	ch, ok := m.chunks[world.ChunkAt(x, y)]
	if !ok {
		return false
	}
	return m.createBlock(ch, world.BlockCoord{X: x, Y: y, Z: z}, t)
}

// RemoveBlock deletes the block at the given position, releasing its render
// resources. The second return is false when nothing was there.
func (m *Manager) RemoveBlock(x, y, z int) (world.BlockType, bool) {
	ch, ok := m.chunks[world.ChunkAt(x, y)]
	if !ok {
		return world.Air, false
	}
	b, ok := ch.Remove(world.BlockCoord{X: x, Y: y, Z: z})
	if !ok {
		return world.Air, false
	}
	m.alloc.Remove(b.Render)
	return b.Type, true
}

// GetBlock looks up the block at the given position.
func (m *Manager) GetBlock(x, y, z int) (world.Block, bool) {
	ch, ok := m.chunks[world.ChunkAt(x, y)]
	if !ok {
		return world.Block{}, false
	}
	return ch.Get(world.BlockCoord{X: x, Y: y, Z: z})
}

// HighestAt returns the z of the topmost block in the column, for spawn
// placement. The second return is false when the chunk is not loaded or the
// column is empty.
func (m *Manager) HighestAt(x, y int) (int, bool) {
	ch, ok := m.chunks[world.ChunkAt(x, y)]
	if !ok {
		return 0, false
	}
	for z := ch.HighestBlock; z >= 0; z-- {
		if _, ok := ch.Get(world.BlockCoord{X: x, Y: y, Z: z}); ok {
			return z, true
		}
	}
	return 0, false
}

// ChunkCount reports the number of visible chunks.
func (m *Manager) ChunkCount() int {
	n := 0
	for _, ch := range m.chunks {
		if ch.Visible {
			n++
		}
	}
	return n
}

// PendingCount reports chunks still waiting on generation.
func (m *Manager) PendingCount() int {
	return len(m.pending)
}
