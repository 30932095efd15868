package material

// Kind identifies the surface model of a material. The numeric value is
// written to the material buffer and drives shader dispatch.
type Kind int

const (
	kindInvalid Kind = iota
	Lambertian
	Metal
	Dielectric
)

// Lookup material kind by its name.
func KindFromName(name string) Kind {
	switch name {
	case "lambertian":
		return Lambertian
	case "metal":
		return Metal
	case "dielectric":
		return Dielectric
	}

	return kindInvalid
}

func (k Kind) String() string {
	switch k {
	case Lambertian:
		return "lambertian"
	case Metal:
		return "metal"
	case Dielectric:
		return "dielectric"
	}

	return "invalid"
}

// Check if k is one of the supported material kinds.
func (k Kind) Valid() bool {
	return k >= Lambertian && k <= Dielectric
}
