// pkg/collision/detector.go
package collision

import (
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Splitter turns a destroyed hazard into its fragments.
type Splitter interface {
	Split(h entity.Hazard, allowGrowth bool) []entity.Hazard
}

// Detector runs the pairwise overlap scans. Scans only read; the plans
// they return are applied afterwards by the owner of the collections.
type Detector struct {
	splitter     Splitter
	scorePerTier int
}

// NewDetector creates a detector
func NewDetector(splitter Splitter, scorePerTier int) *Detector {
	return &Detector{
		splitter:     splitter,
		scorePerTier: scorePerTier,
	}
}

// Hit records one destroyed hazard and how many fragments it left.
type Hit struct {
	Hazard    entity.Hazard
	Fragments int
}

// CraftPlan is the outcome of a craft-hazard scan.
type CraftPlan struct {
	RemoveHazards []int
	Spawn         []entity.Hazard
	Hits          []Hit
}

// Hit reports whether the craft touched any hazard.
func (p CraftPlan) Hit() bool {
	return len(p.RemoveHazards) > 0
}

// Apply removes the struck hazards and appends their fragments.
func (p CraftPlan) Apply(hazards []entity.Hazard) []entity.Hazard {
	hazards = RemoveIndices(hazards, p.RemoveHazards)
	return append(hazards, p.Spawn...)
}

// ProjectilePlan is the outcome of a hazard-projectile scan.
type ProjectilePlan struct {
	RemoveHazards     []int
	RemoveProjectiles []int
	Spawn             []entity.Hazard
	Hits              []Hit
	Score             int
}

// Apply removes struck hazards and spent projectiles and appends the
// fragments.
func (p ProjectilePlan) Apply(hazards []entity.Hazard, projectiles []entity.Projectile) ([]entity.Hazard, []entity.Projectile) {
	hazards = RemoveIndices(hazards, p.RemoveHazards)
	projectiles = RemoveIndices(projectiles, p.RemoveProjectiles)
	return append(hazards, p.Spawn...), projectiles
}

// ScanCraft finds every live hazard overlapping the craft. Craft hits
// always split with growth allowed, whatever the population.
func (d *Detector) ScanCraft(craft physics.Circle, hazards View[entity.Hazard]) CraftPlan {
	var plan CraftPlan
	for i := 0; i < hazards.Len(); i++ {
		h := hazards.At(i)
		if h.Destroyed() {
			continue
		}
		if !h.GetCollider().Collides(craft) {
			continue
		}
		children := d.splitter.Split(h, true)
		plan.RemoveHazards = append(plan.RemoveHazards, i)
		plan.Hits = append(plan.Hits, Hit{Hazard: h, Fragments: len(children)})
		plan.Spawn = append(plan.Spawn, children...)
	}
	return plan
}

// ScanProjectiles matches each live hazard against at most one active
// projectile, first match wins. A projectile is spent by its first hit
// and is not considered for later hazards in the same scan.
func (d *Detector) ScanProjectiles(hazards View[entity.Hazard], projectiles View[entity.Projectile], allowGrowth bool) ProjectilePlan {
	var plan ProjectilePlan
	spent := make(map[int]bool)

	for i := 0; i < hazards.Len(); i++ {
		h := hazards.At(i)
		if h.Destroyed() {
			continue
		}
		hc := h.GetCollider()

		for j := 0; j < projectiles.Len(); j++ {
			if spent[j] {
				continue
			}
			p := projectiles.At(j)
			if !p.Active || !hc.Collides(p.GetCollider()) {
				continue
			}

			spent[j] = true
			children := d.splitter.Split(h, allowGrowth)
			plan.RemoveHazards = append(plan.RemoveHazards, i)
			plan.RemoveProjectiles = append(plan.RemoveProjectiles, j)
			plan.Hits = append(plan.Hits, Hit{Hazard: h, Fragments: len(children)})
			plan.Spawn = append(plan.Spawn, children...)
			plan.Score += h.Points(d.scorePerTier)
			break
		}
	}
	return plan
}

// Prune returns the indices of hazards that reached tier 0.
func Prune(hazards View[entity.Hazard]) []int {
	var doomed []int
	for i := 0; i < hazards.Len(); i++ {
		h := hazards.At(i)
		if h.Destroyed() {
			doomed = append(doomed, i)
		}
	}
	return doomed
}
