package process_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/disciplinary-management/internal/process"
)

var _ = Describe("FormatStatus", func() {
	It("maps the stored underscore form to the display label", func() {
		Expect(process.FormatStatus("Em_Analise")).To(Equal("Sindicância"))
		Expect(process.FormatStatus("Aguardando_Assinatura")).To(Equal("Aguardando Assinatura"))
		Expect(process.FormatStatus("Finalizado")).To(Equal("Finalizado"))
	})

	It("matches accented and differently cased spellings", func() {
		Expect(process.FormatStatus("em análise")).To(Equal("Sindicância"))
		Expect(process.FormatStatus("EM_ANALISE")).To(Equal("Sindicância"))
		Expect(process.FormatStatus("aguardando assinatura")).To(Equal("Aguardando Assinatura"))
		Expect(process.FormatStatus("FINALIZADO")).To(Equal("Finalizado"))
	})

	It("recognizes the sindicância spelling directly", func() {
		Expect(process.FormatStatus("Sindicância")).To(Equal("Sindicância"))
		Expect(process.FormatStatus("sindicancia")).To(Equal("Sindicância"))
	})

	It("is idempotent over its own output", func() {
		for _, raw := range []string{"Em_Analise", "Aguardando_Assinatura", "Finalizado"} {
			once := process.FormatStatus(raw)
			Expect(process.FormatStatus(once)).To(Equal(once))
		}
	})

	It("passes unknown values through trimmed with underscores replaced", func() {
		Expect(process.FormatStatus("  Cancelado  ")).To(Equal("Cancelado"))
		Expect(process.FormatStatus("Em_Revisao")).To(Equal("Em Revisao"))
		Expect(process.FormatStatus("")).To(Equal(""))
	})
})

var _ = Describe("FormatClassification", func() {
	It("maps spreadsheet spellings onto accented labels", func() {
		Expect(process.FormatClassification("Media")).To(Equal("Média"))
		Expect(process.FormatClassification("média")).To(Equal("Média"))
		Expect(process.FormatClassification("LEVE")).To(Equal("Leve"))
		Expect(process.FormatClassification("grave")).To(Equal("Grave"))
	})

	It("matches gravíssima before grave", func() {
		Expect(process.FormatClassification("GRAVISSIMA")).To(Equal("Gravíssima"))
		Expect(process.FormatClassification("Gravíssima")).To(Equal("Gravíssima"))
		Expect(process.FormatClassification("gravissima")).To(Equal("Gravíssima"))
	})

	It("is idempotent over its own output", func() {
		for _, raw := range []string{"leve", "media", "grave", "gravissima"} {
			once := process.FormatClassification(raw)
			Expect(process.FormatClassification(once)).To(Equal(once))
		}
	})

	It("falls back to the lightest severity for unknown values", func() {
		Expect(process.FormatClassification("Indefinida")).To(Equal("Leve"))
		Expect(process.FormatClassification("")).To(Equal("Leve"))
	})
})

var _ = Describe("SuspensionDaysFromMeasure", func() {
	It("extracts the day count from suspension labels", func() {
		Expect(process.SuspensionDaysFromMeasure(process.MeasureSuspension1Day)).To(Equal(1))
		Expect(process.SuspensionDaysFromMeasure(process.MeasureSuspension3Day)).To(Equal(3))
		Expect(process.SuspensionDaysFromMeasure(process.MeasureSuspension5Day)).To(Equal(5))
	})

	It("returns zero for non-suspension measures", func() {
		Expect(process.SuspensionDaysFromMeasure(process.MeasureWrittenWarning)).To(Equal(0))
		Expect(process.SuspensionDaysFromMeasure("")).To(Equal(0))
	})
})
