package generator

// Colombian-law contract templates keyed by contract type. Placeholders use
// {key} and {key:,.0f} for grouped monetary amounts.
var templates = map[string]string{
	"ARRENDAMIENTO_VIVIENDA": `
<h1>CONTRATO DE ARRENDAMIENTO DE VIVIENDA URBANA</h1>

<p>Entre <strong>{arrendador_nombre}</strong>, identificado con cédula <strong>{arrendador_cedula}</strong>,
quien en adelante se denominará EL ARRENDADOR, y <strong>{arrendatario_nombre}</strong>,
identificado con cédula <strong>{arrendatario_cedula}</strong>, quien en adelante se denominará EL ARRENDATARIO,
se celebra el presente contrato de arrendamiento de vivienda urbana, regido por la Ley 820 de 2003.</p>

<h2>PRIMERA - OBJETO</h2>
<p>EL ARRENDADOR entrega en arrendamiento a EL ARRENDATARIO el inmueble ubicado en
<strong>{direccion}</strong>, en la ciudad de <strong>{ciudad}</strong>.</p>

<h2>SEGUNDA - CANON</h2>
<p>El canon mensual de arrendamiento es de <strong>${canon_mensual:,.0f} COP</strong>,
pagadero dentro de los primeros cinco (5) días de cada mes.</p>

<h2>TERCERA - DURACIÓN</h2>
<p>El presente contrato tiene una duración de <strong>{duracion_meses} meses</strong>,
contados a partir del <strong>{fecha_inicio}</strong>.</p>

<h2>CUARTA - OBLIGACIONES DEL ARRENDATARIO</h2>
<ol>
<li>Pagar el canon de arrendamiento en las fechas estipuladas.</li>
<li>Conservar el inmueble en buen estado.</li>
<li>No subarrendar ni ceder el contrato sin autorización escrita.</li>
<li>Pagar los servicios públicos durante la vigencia del contrato.</li>
</ol>

<h2>QUINTA - OBLIGACIONES DEL ARRENDADOR</h2>
<ol>
<li>Entregar el inmueble en condiciones de habitabilidad.</li>
<li>Mantener el inmueble en estado de servir para su uso.</li>
<li>Realizar las reparaciones locativas necesarias.</li>
</ol>

<p>Para constancia se firma en la ciudad de <strong>{ciudad}</strong>.</p>

<div class="signatures">
<div class="signature-block">
<p>_____________________________</p>
<p><strong>EL ARRENDADOR</strong></p>
<p>{arrendador_nombre}</p>
<p>C.C. {arrendador_cedula}</p>
</div>
<div class="signature-block">
<p>_____________________________</p>
<p><strong>EL ARRENDATARIO</strong></p>
<p>{arrendatario_nombre}</p>
<p>C.C. {arrendatario_cedula}</p>
</div>
</div>
`,
	"PRESTACION_SERVICIOS": `
<h1>CONTRATO DE PRESTACIÓN DE SERVICIOS PROFESIONALES</h1>

<p>Entre <strong>{contratante_nombre}</strong>, identificado con NIT/C.C. <strong>{contratante_nit}</strong>,
quien en adelante se denominará EL CONTRATANTE, y <strong>{contratista_nombre}</strong>,
identificado con cédula <strong>{contratista_cedula}</strong>, quien en adelante se denominará EL CONTRATISTA,
se celebra el presente contrato de prestación de servicios.</p>

<h2>PRIMERA - OBJETO</h2>
<p>{objeto}</p>

<h2>SEGUNDA - VALOR</h2>
<p>El valor total del contrato es de <strong>${valor:,.0f} COP</strong>.</p>

<h2>TERCERA - DURACIÓN</h2>
<p>El presente contrato tiene una duración de <strong>{duracion}</strong>,
a partir del <strong>{fecha_inicio}</strong>.</p>

<h2>CUARTA - INDEPENDENCIA</h2>
<p>EL CONTRATISTA actuará por su propia cuenta, con autonomía técnica y administrativa.</p>

<p>Para constancia se firma.</p>

<div class="signatures">
<div class="signature-block">
<p>_____________________________</p>
<p><strong>EL CONTRATANTE</strong></p>
<p>{contratante_nombre}</p>
</div>
<div class="signature-block">
<p>_____________________________</p>
<p><strong>EL CONTRATISTA</strong></p>
<p>{contratista_nombre}</p>
</div>
</div>
`,
	"NDA": `
<h1>ACUERDO DE CONFIDENCIALIDAD</h1>

<p>Entre <strong>{parte_reveladora}</strong> (Parte Reveladora) y <strong>{parte_receptora}</strong>
(Parte Receptora), se celebra el presente Acuerdo de Confidencialidad.</p>

<h2>1. INFORMACIÓN CONFIDENCIAL</h2>
<p>{objeto_confidencial}</p>

<h2>2. OBLIGACIONES</h2>
<p>La Parte Receptora se obliga a:</p>
<ul>
<li>Mantener en estricta confidencialidad la información recibida.</li>
<li>No divulgar la información a terceros.</li>
<li>Usar la información únicamente para el propósito acordado.</li>
</ul>

<h2>3. DURACIÓN</h2>
<p>Este acuerdo tendrá vigencia de <strong>{duracion}</strong>.</p>

<div class="signatures">
<div class="signature-block">
<p>_____________________________</p>
<p><strong>PARTE REVELADORA</strong></p>
<p>{parte_reveladora}</p>
</div>
<div class="signature-block">
<p>_____________________________</p>
<p><strong>PARTE RECEPTORA</strong></p>
<p>{parte_receptora}</p>
</div>
</div>
`,
}

var defaultTemplate = `
<h1>CONTRATO</h1>

<p>Se celebra el presente contrato con los siguientes términos y condiciones:</p>

<h2>CLÁUSULAS</h2>
<p>Las partes acuerdan los términos especificados en este documento.</p>

<div class="signatures">
<p>Para constancia se firma.</p>
</div>
`
