package document_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/disciplinary-management/internal/document"
)

var _ = Describe("Extenso", func() {
	It("spells out units", func() {
		Expect(document.Extenso(0)).To(Equal("zero"))
		Expect(document.Extenso(1)).To(Equal("um"))
		Expect(document.Extenso(3)).To(Equal("três"))
		Expect(document.Extenso(5)).To(Equal("cinco"))
	})

	It("spells out teens", func() {
		Expect(document.Extenso(10)).To(Equal("dez"))
		Expect(document.Extenso(14)).To(Equal("quatorze"))
		Expect(document.Extenso(19)).To(Equal("dezenove"))
	})

	It("spells out tens with the conjunction", func() {
		Expect(document.Extenso(20)).To(Equal("vinte"))
		Expect(document.Extenso(21)).To(Equal("vinte e um"))
		Expect(document.Extenso(45)).To(Equal("quarenta e cinco"))
		Expect(document.Extenso(99)).To(Equal("noventa e nove"))
	})

	It("uses cem for exactly one hundred", func() {
		Expect(document.Extenso(100)).To(Equal("cem"))
		Expect(document.Extenso(101)).To(Equal("cento e um"))
		Expect(document.Extenso(115)).To(Equal("cento e quinze"))
	})

	It("spells out hundreds", func() {
		Expect(document.Extenso(200)).To(Equal("duzentos"))
		Expect(document.Extenso(345)).To(Equal("trezentos e quarenta e cinco"))
		Expect(document.Extenso(999)).To(Equal("novecentos e noventa e nove"))
	})

	It("falls back to digits outside the supported range", func() {
		Expect(document.Extenso(1000)).To(Equal("1000"))
		Expect(document.Extenso(-2)).To(Equal("-2"))
	})
})
