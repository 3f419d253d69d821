package document_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/disciplinary-management/internal/document"
)

func TestDocument(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Document Module Suite")
}

var _ = Describe("Fill", func() {
	It("replaces every occurrence of a placeholder", func() {
		template := "<p>{{nome_colaborador}}</p><p>{{nome_colaborador}}</p>"

		out := document.Fill(template, map[string]string{"nome_colaborador": "Ana Souza"})

		Expect(out).To(Equal("<p>Ana Souza</p><p>Ana Souza</p>"))
	})

	It("sweeps placeholders with no supplied value", func() {
		template := "Funcionário: {{nome_colaborador}}, Setor: {{setor_colaborador}}"

		out := document.Fill(template, map[string]string{"nome_colaborador": "Ana Souza"})

		Expect(out).To(Equal("Funcionário: Ana Souza, Setor: " + document.PendingMarker))
		Expect(out).ToNot(ContainSubstring("{{"))
	})

	It("matches whole tokens only", func() {
		template := "{{nome}} / {{nome_colaborador}}"

		out := document.Fill(template, map[string]string{
			"nome":             "Comissão",
			"nome_colaborador": "Ana Souza",
		})

		Expect(out).To(Equal("Comissão / Ana Souza"))
	})

	It("leaves a shorter key out of a longer placeholder", func() {
		template := "{{nome_colaborador}}"

		out := document.Fill(template, map[string]string{"nome": "Errado"})

		Expect(out).To(Equal(document.PendingMarker))
	})

	It("does not modify the input template", func() {
		template := "{{data_atual}}"

		_ = document.Fill(template, map[string]string{"data_atual": "01/01/2026"})

		Expect(template).To(Equal("{{data_atual}}"))
	})

	It("handles an empty data map", func() {
		out := document.Fill("{{a}} {{b}}", nil)

		Expect(out).To(Equal(document.PendingMarker + " " + document.PendingMarker))
	})

	It("produces the same output regardless of key order", func() {
		template := "<p>{{parecer}}</p>"
		data := map[string]string{
			"parecer":    "ver {{anexo}}",
			"anexo":      "Anexo I",
			"observacao": "n/a",
		}

		first := document.Fill(template, data)
		for i := 0; i < 50; i++ {
			Expect(document.Fill(template, data)).To(Equal(first))
		}
	})

	It("sweeps tokens smuggled in through values instead of resolving them", func() {
		out := document.Fill("<p>{{a}}</p>", map[string]string{
			"a": "{{b}}",
			"b": "X",
		})

		Expect(out).To(Equal("<p>" + document.PendingMarker + "</p>"))
	})
})

var _ = Describe("TemplateFor", func() {
	It("knows every document type", func() {
		for _, dt := range []string{
			document.TypeWarning,
			document.TypeSuspension,
			document.TypeJustCause,
			document.TypeInquiry,
		} {
			tpl, ok := document.TemplateFor(dt)
			Expect(ok).To(BeTrue(), dt)
			Expect(tpl).ToNot(BeEmpty())
		}
	})

	It("rejects unknown types", func() {
		_, ok := document.TemplateFor("demissao")
		Expect(ok).To(BeFalse())
	})
})
