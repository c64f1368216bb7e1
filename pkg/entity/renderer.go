package entity

// Renderer handles rendering game entities
type Renderer interface {
	RenderCraft(craft *Craft)
	RenderHazard(hazard *Hazard)
	RenderProjectile(projectile *Projectile)
	Clear()
	Present()
}
