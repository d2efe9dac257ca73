// Package sections holds the fixed, ordered list of update sections and the
// dispatcher that runs them.
//
// A section pairs an applicability check with an update action:
//
//	archlinux  /etc/arch-release exists   sudo pacman -Syu, yay -Sua
//	nix        nix-env on PATH            nix-env --upgrade
//	xkeysnail  /opt/xkeysnail/bin/pip     pip install --upgrade xkeysnail
//	python     always                     pip3 of every ~/tools/python install
//	ruby       always                     gem update
//	node       always                     npm update in ~/tools/node/<version>/<name>
//	ocaml      always                     opam update, opam upgrade --yes
//	go         always                     go get -u all
//	rust       always                     rustup and cargo install-update
//
// Sections whose tool is missing report a skip notice and count as
// successful. A failing command marks its section failed but never stops
// the remaining commands or sections.
package sections
