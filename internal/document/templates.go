package document

// Document types accepted by the generator.
const (
	TypeWarning    = "advertencia"
	TypeSuspension = "suspensao"
	TypeJustCause  = "justa_causa"
	TypeInquiry    = "sindicancia"
)

// Templates use {{key}} placeholders filled by Fill. The layout is frozen
// legal stationery; change it only with sign-off from the legal team.

const warningTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Advertência Disciplinar</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 40px; }
    .header { text-align: center; margin-bottom: 40px; }
    .header h1 { margin: 0; font-size: 24px; }
    .section { margin-bottom: 20px; }
    .section-title { font-weight: bold; text-decoration: underline; margin-top: 20px; margin-bottom: 10px; }
    .signature-section { margin-top: 60px; }
    .signature-line { border-top: 1px solid #000; width: 300px; text-align: center; }
  </style>
</head>
<body>
  <div class="header">
    <h1>ADVERTÊNCIA DISCIPLINAR</h1>
  </div>

  <div class="section">
    <p><strong>Funcionário:</strong> {{nome_colaborador}}</p>
    <p><strong>Cargo:</strong> {{cargo_colaborador}}</p>
    <p><strong>Setor:</strong> {{setor_colaborador}}</p>
    <p><strong>Data:</strong> {{data_atual}}</p>
  </div>

  <div class="section">
    <div class="section-title">DESCRIÇÃO DO COMPORTAMENTO INADEQUADO</div>
    <p><strong>Tipo de Desvio:</strong> {{tipo_desvio_nome}}</p>
    <p><strong>Classificação:</strong> {{classificacao_desvio}}</p>
    <p><strong>Período:</strong> {{periodo_ocorrencia}}</p>
    <p><strong>Data da Ocorrência:</strong> {{data_da_ocorrencia}}</p>
    <p><strong>Descrição:</strong></p>
    <p>{{descricao_desvio}}</p>
  </div>

  <div class="section">
    <div class="section-title">DISPOSIÇÕES CONTRATUAIS VIOLADAS</div>
    <p>{{clt_alinea}}</p>
  </div>

  <div class="section">
    <div class="section-title">MEDIDA DISCIPLINAR</div>
    <p>Por meio desta, comunicamos que foi aplicada uma ADVERTÊNCIA DISCIPLINAR, conforme previsto em nossa política de recursos humanos.</p>
    <p>Esperamos que este funcionário cumpra rigorosamente com as normas e regulamentos da empresa, evitando comportamentos similares no futuro.</p>
  </div>

  <div class="section">
    <div class="section-title">OBSERVAÇÕES</div>
    <p>{{resolucao_final}}</p>
  </div>

  <div class="signature-section">
    <div>Assinado por:</div>
    <div class="signature-line">{{nome_assinatura}}</div>
    <div style="text-align: center; margin-top: 40px; font-size: 12px; color: #999;">
      <p>Documento gerado automaticamente pelo Sistema Disciplinar</p>
    </div>
  </div>
</body>
</html>`

const suspensionTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Suspensão Disciplinar</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 40px; }
    .header { text-align: center; margin-bottom: 40px; }
    .header h1 { margin: 0; font-size: 24px; }
    .section { margin-bottom: 20px; }
    .section-title { font-weight: bold; text-decoration: underline; margin-top: 20px; margin-bottom: 10px; }
    .signature-section { margin-top: 60px; }
    .signature-line { border-top: 1px solid #000; width: 300px; text-align: center; }
  </style>
</head>
<body>
  <div class="header">
    <h1>SUSPENSÃO DISCIPLINAR</h1>
  </div>

  <div class="section">
    <p><strong>Funcionário:</strong> {{nome_colaborador}}</p>
    <p><strong>Cargo:</strong> {{cargo_colaborador}}</p>
    <p><strong>Setor:</strong> {{setor_colaborador}}</p>
    <p><strong>Data:</strong> {{data_atual}}</p>
  </div>

  <div class="section">
    <div class="section-title">DESCRIÇÃO DO COMPORTAMENTO INADEQUADO</div>
    <p><strong>Tipo de Desvio:</strong> {{tipo_desvio_nome}}</p>
    <p><strong>Classificação:</strong> {{classificacao_desvio}}</p>
    <p><strong>Período:</strong> {{periodo_ocorrencia}}</p>
    <p><strong>Data da Ocorrência:</strong> {{data_da_ocorrencia}}</p>
    <p><strong>Descrição:</strong></p>
    <p>{{descricao_desvio}}</p>
  </div>

  <div class="section">
    <div class="section-title">DISPOSIÇÕES CONTRATUAIS VIOLADAS</div>
    <p>{{clt_alinea}}</p>
  </div>

  <div class="section">
    <div class="section-title">MEDIDA DISCIPLINAR - SUSPENSÃO</div>
    <p>Por meio desta, comunicamos que foi aplicada uma SUSPENSÃO DISCIPLINAR pelo período de <strong>{{dias_suspensao_numero}} ({{dias_suspensao_extenso}})</strong> dias.</p>
    <p><strong>Período de Suspensão:</strong> A partir da presente data até {{data_retorno_suspensao}}</p>
    <p>Durante este período, o funcionário deverá se afastar do local de trabalho e não receberá remuneração pelas horas trabalhadas.</p>
  </div>

  <div class="section">
    <div class="section-title">OBSERVAÇÕES</div>
    <p>{{resolucao_final}}</p>
  </div>

  <div class="signature-section">
    <div>Assinado por:</div>
    <div class="signature-line">{{nome_assinatura}}</div>
    <div style="text-align: center; margin-top: 40px; font-size: 12px; color: #999;">
      <p>Documento gerado automaticamente pelo Sistema Disciplinar</p>
    </div>
  </div>
</body>
</html>`

const justCauseTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Aviso de Dispensa por Justa Causa</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 40px; }
    .header { text-align: center; margin-bottom: 40px; }
    .header h1 { margin: 0; font-size: 24px; }
    .section { margin-bottom: 20px; }
    .section-title { font-weight: bold; text-decoration: underline; margin-top: 20px; margin-bottom: 10px; }
    .signature-section { margin-top: 60px; }
    .signature-line { border-top: 1px solid #000; width: 300px; text-align: center; }
  </style>
</head>
<body>
  <div class="header">
    <h1>AVISO DE DISPENSA POR JUSTA CAUSA</h1>
  </div>

  <div class="section">
    <p><strong>Funcionário:</strong> {{nome_colaborador}}</p>
    <p><strong>Cargo:</strong> {{cargo_colaborador}}</p>
    <p><strong>Setor:</strong> {{setor_colaborador}}</p>
    <p><strong>Data:</strong> {{data_atual}}</p>
  </div>

  <div class="section">
    <div class="section-title">DESCRIÇÃO DO COMPORTAMENTO INADEQUADO</div>
    <p><strong>Tipo de Desvio:</strong> {{tipo_desvio_nome}}</p>
    <p><strong>Classificação:</strong> {{classificacao_desvio}}</p>
    <p><strong>Período:</strong> {{periodo_ocorrencia}}</p>
    <p><strong>Data da Ocorrência:</strong> {{data_da_ocorrencia}}</p>
    <p><strong>Descrição:</strong></p>
    <p>{{descricao_desvio}}</p>
  </div>

  <div class="section">
    <div class="section-title">DISPOSIÇÕES CONTRATUAIS VIOLADAS</div>
    <p>{{clt_alinea}}</p>
  </div>

  <div class="section">
    <div class="section-title">MEDIDA DISCIPLINAR - DISPENSA POR JUSTA CAUSA</div>
    <p>Por meio desta, comunicamos que o contrato de trabalho foi rescindido <strong>POR JUSTA CAUSA</strong>, conforme artigos do Código Civil e direito trabalhista, em razão do comportamento inadequado descrito acima.</p>
    <p>Esta dispensa implica na perda do emprego e na rescisão imediata do contrato de trabalho.</p>
  </div>

  <div class="section">
    <div class="section-title">DIREITOS E OBRIGAÇÕES</div>
    <p>O funcionário terá direito aos valores proporcionais devidos conforme legislação trabalhista vigente. Qualquer dúvida ou contestação deverá ser apresentada conforme procedimentos legais estabelecidos.</p>
  </div>

  <div class="section">
    <div class="section-title">OBSERVAÇÕES</div>
    <p>{{resolucao_final}}</p>
  </div>

  <div class="signature-section">
    <div>Assinado por:</div>
    <div class="signature-line">{{nome_assinatura}}</div>
    <div style="text-align: center; margin-top: 40px; font-size: 12px; color: #999;">
      <p>Documento gerado automaticamente pelo Sistema Disciplinar</p>
    </div>
  </div>
</body>
</html>`

const inquiryTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Termo de Instauração de Sindicância</title>
  <style>
    body {
      font-family: 'Arial', sans-serif;
      line-height: 1.5;
      color: #333;
      margin: 40px;
      max-width: 900px;
    }
    .header {
      text-align: center;
      margin-bottom: 40px;
      border-bottom: 2px solid #000;
      padding-bottom: 20px;
    }
    .header h1 {
      margin: 0 0 10px 0;
      font-size: 20px;
      text-transform: uppercase;
    }
    .header p {
      margin: 5px 0;
      font-size: 11px;
    }
    .section {
      margin-bottom: 25px;
    }
    .section-title {
      font-weight: bold;
      text-decoration: underline;
      margin: 20px 0 10px 0;
      font-size: 12px;
      text-transform: uppercase;
    }
    .section-content {
      margin-left: 20px;
      font-size: 11px;
    }
    p { margin: 8px 0; }
    .text-justify { text-align: justify; }
    table {
      width: 100%;
      border-collapse: collapse;
      margin: 10px 0;
      font-size: 11px;
    }
    table td, table th {
      border: 1px solid #000;
      padding: 8px;
      text-align: left;
    }
    table th {
      background-color: #f0f0f0;
      font-weight: bold;
    }
    .signature-section {
      margin-top: 60px;
      display: flex;
      justify-content: space-around;
    }
    .signature-block {
      text-align: center;
      font-size: 11px;
    }
    .signature-line {
      border-top: 1px solid #000;
      width: 250px;
      margin-top: 40px;
      margin-bottom: 5px;
    }
    .footer {
      text-align: center;
      margin-top: 40px;
      padding-top: 20px;
      border-top: 1px solid #ccc;
      font-size: 10px;
      color: #999;
    }
  </style>
</head>
<body>
  <div class="header">
    <h1>TERMO DE INSTAURAÇÃO DE SINDICÂNCIA</h1>
    <p>Número: {{numero_sindicancia}}</p>
    <p>Data: {{data_atual}}</p>
  </div>

  <div class="section">
    <div class="section-title">1. DADOS DA SINDICÂNCIA</div>
    <div class="section-content">
      <p><strong>Número da Sindicância:</strong> {{numero_sindicancia}}</p>
      <p><strong>Instituidor:</strong> {{nome_instituidor}}</p>
      <p><strong>CPF Instituidor:</strong> {{cpf_instituidor}}</p>
      <p><strong>Data de Instauração:</strong> {{data_atual}}</p>
    </div>
  </div>

  <div class="section">
    <div class="section-title">2. MEMBROS DA COMISSÃO DE SINDICÂNCIA</div>
    <div class="section-content">
      <table>
        <thead>
          <tr>
            <th>Nome</th>
            <th>Cargo</th>
            <th>Função na Comissão</th>
            <th>OAB (se aplicável)</th>
          </tr>
        </thead>
        <tbody>
          {{membros_table}}
        </tbody>
      </table>
    </div>
  </div>

  <div class="section">
    <div class="section-title">3. TESTEMUNHAS</div>
    <div class="section-content">
      <table>
        <thead>
          <tr>
            <th>Nome</th>
            <th>CPF</th>
          </tr>
        </thead>
        <tbody>
          {{testemunhas_table}}
        </tbody>
      </table>
    </div>
  </div>

  <div class="section">
    <div class="section-title">4. OBJETO DA SINDICÂNCIA</div>
    <div class="section-content">
      <p class="text-justify">
        Por este termo, fica instaurada sindicância para apuração dos fatos relacionados ao processo disciplinar,
        conforme procedimentos estabelecidos pela empresa. A comissão de sindicância, designada acima,
        deverá proceder à investigação, coleta de provas e depoimentos, a fim de formar parecer circunstanciado
        sobre os fatos apurados.
      </p>
    </div>
  </div>

  <div class="section">
    <div class="section-title">5. PROCEDIMENTO</div>
    <div class="section-content">
      <p class="text-justify">
        A comissão de sindicância deverá seguir as normas internas de procedimento disciplinar,
        garantindo direito de defesa a todas as partes envolvidas, e deverá concluir seus trabalhos
        no prazo estabelecido pela legislação aplicável e pelas políticas da empresa.
      </p>
    </div>
  </div>

  <div class="signature-section">
    <div class="signature-block">
      <div>Instituidor da Sindicância:</div>
      <div class="signature-line"></div>
      <div>{{nome_instituidor}}</div>
    </div>
    <div class="signature-block">
      <div>Presidente da Comissão:</div>
      <div class="signature-line"></div>
      <div>{{presidente_nome}}</div>
    </div>
  </div>

  <div class="footer">
    <p>Documento gerado automaticamente pelo Sistema de Recursos Humanos</p>
    <p>Data de Geração: {{data_atual}}</p>
  </div>
</body>
</html>`

var templates = map[string]string{
	TypeWarning:    warningTemplate,
	TypeSuspension: suspensionTemplate,
	TypeJustCause:  justCauseTemplate,
	TypeInquiry:    inquiryTemplate,
}

// TemplateFor returns the raw template for a document type.
func TemplateFor(documentType string) (string, bool) {
	t, ok := templates[documentType]
	return t, ok
}
