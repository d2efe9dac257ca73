package sections

import "github.com/ajxudir/sysupdate/pkg/constants"

// Default returns the fixed section list in dispatch order.
func Default() []Section {
	return []Section{
		{
			Name: constants.SectionArchLinux, Title: "Arch Linux", Tool: "pacman",
			Applicable: fileExists(archReleaseFile), Detect: fileExists(archReleaseFile),
			Update: updateArchLinux,
		},
		{
			Name: constants.SectionNix, Title: "Nix", Tool: "nix-env",
			Applicable: onPath("nix-env"), Detect: onPath("nix-env"),
			Update: updateNix,
		},
		{
			Name: constants.SectionXkeysnail, Title: "xkeysnail", Tool: xkeysnailPip,
			Applicable: fileExists(xkeysnailPip), Detect: fileExists(xkeysnailPip),
			Update: updateXkeysnail,
		},
		{
			Name: constants.SectionPython, Title: "Python", Tool: "pip3",
			Applicable: always, Detect: hasPythonTools,
			Update: updatePython,
		},
		{
			Name: constants.SectionRuby, Title: "Ruby", Tool: "gem",
			Applicable: always, Detect: onPath("gem"),
			Update: updateRuby,
		},
		{
			Name: constants.SectionNode, Title: "Node", Tool: "npm",
			Applicable: always, Detect: onPath("npm"),
			Update: updateNode,
		},
		{
			Name: constants.SectionOCaml, Title: "OCaml", Tool: "opam",
			Applicable: always, Detect: onPath("opam"),
			Update: updateOCaml,
		},
		{
			Name: constants.SectionGo, Title: "Go", Tool: "go",
			Applicable: always, Detect: onPath("go"),
			Update: updateGo,
		},
		{
			Name: constants.SectionRust, Title: "Rust", Tool: "rustup",
			Applicable: always, Detect: onPath("rustup"),
			Update: updateRust,
		},
	}
}

// Names returns the names of list in order.
func Names(list []Section) []string {
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
	}
	return names
}
