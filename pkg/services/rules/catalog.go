package rules

// DefaultRules is the question catalog for Spanish general accounting
// plan (PGC) accounts, grouped by chart section. Generic single-digit
// rules at the end catch accounts no specific rule covers.
func DefaultRules() []Rule {
	var rules []Rule

	// Grupo 1: financiación básica
	rules = append(rules,
		Rule{
			Patterns:         []string{"capital", "capital.*social", "acciones"},
			CodePrefixes:     []string{"100", "101", "102", "103", "104", "105", "106", "107", "108", "109"},
			QuestionIncrease: "¿Se ha realizado alguna ampliación de capital durante el período? ¿Cuáles fueron los términos y condiciones?",
			QuestionDecrease: "¿Ha habido alguna reducción de capital? ¿Cuál fue el motivo (pérdidas, devolución a accionistas)?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"reserva", "reservas", "beneficios.*retenidos"},
			CodePrefixes:     []string{"110", "111", "112", "113", "114", "115", "116", "117", "118", "119"},
			QuestionIncrease: "¿Se ha dotado reservas con cargo a resultados? ¿Cuál es el origen del incremento?",
			QuestionDecrease: "¿Se han utilizado reservas para compensar pérdidas o para otros fines? Por favor detalle.",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"resultado", "ejercicios.*anteriores", "pérdidas.*acumuladas", "remanente"},
			CodePrefixes:     []string{"120", "121", "122", "129"},
			QuestionIncrease: "¿Corresponde a beneficios no distribuidos de ejercicios anteriores? ¿Hay plan de distribución?",
			QuestionDecrease: "¿Las pérdidas acumuladas provienen de ejercicios específicos? ¿Existe plan de saneamiento?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"subvenci", "donacion", "ayuda", "subvención"},
			CodePrefixes:     []string{"130", "131", "132", "133", "134", "135", "136", "137"},
			QuestionIncrease: "¿Se han recibido nuevas subvenciones? ¿De qué organismo y para qué finalidad?",
			QuestionDecrease: "¿Se ha imputado subvención a resultados? ¿Cumple con los requisitos de la concesión?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"provisión", "provision", "obligacion", "contingencia"},
			CodePrefixes:     []string{"140", "141", "142", "143", "145", "146", "147"},
			QuestionIncrease: "¿Se han dotado nuevas provisiones a largo plazo? ¿Cuál es el riesgo u obligación subyacente?",
			QuestionDecrease: "¿Se ha revertido o aplicado la provisión? ¿Cuál fue el desenlace del riesgo provisionado?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"deuda", "préstamo", "prestamo", "obligacion", "financiaci"},
			CodePrefixes:     []string{"170", "171", "172", "173", "174", "175", "176", "177", "178", "179"},
			QuestionIncrease: "¿Se ha obtenido nueva financiación a largo plazo? ¿Cuáles son las condiciones (tipo, plazo, garantías)?",
			QuestionDecrease: "¿Se han amortizado deudas a largo plazo? ¿Con qué fondos se ha realizado el pago?",
			Weight:           2,
		},
	)

	// Grupo 2: inmovilizado
	rules = append(rules,
		Rule{
			Patterns:         []string{"intangible", "patente", "marca", "software", "licencia", "fondo.*comercio", "I\\+D"},
			CodePrefixes:     []string{"200", "201", "202", "203", "204", "205", "206", "207", "208", "209"},
			QuestionIncrease: "¿Se han adquirido nuevos activos intangibles? ¿Cuál es la naturaleza y vida útil estimada?",
			QuestionDecrease: "¿Se ha dado de baja o deteriorado algún intangible? ¿Cuál fue el motivo?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"terreno", "finca", "solar", "parcela"},
			CodePrefixes:     []string{"210"},
			QuestionIncrease: "¿Se han adquirido nuevos terrenos? ¿Cuál es su ubicación y finalidad?",
			QuestionDecrease: "¿Se han vendido terrenos? ¿Cuál fue el precio de venta y el resultado de la operación?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"construccion", "edificio", "nave", "local", "inmueble"},
			CodePrefixes:     []string{"211"},
			QuestionIncrease: "¿Se han adquirido o construido nuevos inmuebles? ¿Para qué uso?",
			QuestionDecrease: "¿Se han vendido inmuebles o se ha registrado deterioro? Por favor detalle.",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"instalaci", "técnica", "maquinaria"},
			CodePrefixes:     []string{"212"},
			QuestionIncrease: "¿Se han realizado inversiones en instalaciones técnicas? ¿Mejoran la capacidad productiva?",
			QuestionDecrease: "¿Se han dado de baja instalaciones? ¿Por obsolescencia o renovación?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"maquinaria", "máquina", "equipo.*industrial"},
			CodePrefixes:     []string{"213"},
			QuestionIncrease: "¿Se ha adquirido nueva maquinaria? ¿Para qué proceso productivo?",
			QuestionDecrease: "¿Se ha dado de baja maquinaria? ¿Por venta, obsolescencia o siniestro?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"utillaje", "herramienta", "útil"},
			CodePrefixes:     []string{"214"},
			QuestionIncrease: "¿Se ha adquirido nuevo utillaje? ¿Para qué actividad?",
			QuestionDecrease: "¿Se ha dado de baja utillaje por desgaste o sustitución?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"mobiliario", "mueble", "enseres"},
			CodePrefixes:     []string{"216"},
			QuestionIncrease: "¿Se ha adquirido nuevo mobiliario? ¿Para nuevas instalaciones o renovación?",
			QuestionDecrease: "¿Se ha dado de baja mobiliario? ¿Por deterioro o traslado?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"equipo", "informátic", "ordenador", "servidor", "hardware", "IT"},
			CodePrefixes:     []string{"217"},
			QuestionIncrease: "¿Se han adquirido nuevos equipos informáticos? ¿Forman parte de un proyecto de modernización?",
			QuestionDecrease: "¿Se han dado de baja equipos informáticos? ¿Por obsolescencia tecnológica?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"transporte", "vehículo", "vehiculo", "coche", "furgoneta", "camión", "flota"},
			CodePrefixes:     []string{"218"},
			QuestionIncrease: "¿Se han adquirido nuevos vehículos? ¿Para qué uso (comercial, logística)?",
			QuestionDecrease: "¿Se han vendido vehículos? ¿Cuál fue el resultado de la venta?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"otro.*inmovilizado", "diversos"},
			CodePrefixes:     []string{"219"},
			QuestionIncrease: "¿Se han adquirido otros elementos de inmovilizado? Por favor especifique la naturaleza.",
			QuestionDecrease: "¿Se han dado de baja otros elementos de inmovilizado? ¿Cuál fue el motivo?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"inversión.*inmobiliaria", "inmueble.*inversión", "alquiler.*inmueble"},
			CodePrefixes:     []string{"220", "221", "222", "223"},
			QuestionIncrease: "¿Se han adquirido inmuebles para inversión? ¿Cuál es la rentabilidad esperada?",
			QuestionDecrease: "¿Se han vendido inversiones inmobiliarias? ¿Cuál fue el resultado?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"en.*curso", "construcción", "montaje", "proyecto"},
			CodePrefixes:     []string{"230", "231", "232", "233", "237", "239"},
			QuestionIncrease: "¿Hay nuevos proyectos de inversión en curso? ¿Cuál es el plazo estimado de finalización?",
			QuestionDecrease: "¿Se ha activado algún proyecto finalizado? ¿O se ha cancelado algún proyecto?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"participación", "grupo", "asociada", "vinculada", "inversión.*financiera"},
			CodePrefixes:     []string{"240", "241", "242", "243", "244", "245", "246", "247", "248", "249"},
			QuestionIncrease: "¿Se han realizado inversiones en empresas del grupo? ¿Ampliación de participación o nueva adquisición?",
			QuestionDecrease: "¿Se han vendido participaciones o deteriorado inversiones en empresas del grupo?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"inversión", "valores", "acción", "bono", "renta.*fija", "renta.*variable"},
			CodePrefixes:     []string{"250", "251", "252", "253", "254", "255", "256", "257", "258", "259"},
			QuestionIncrease: "¿Se han realizado nuevas inversiones financieras? ¿Cuál es la estrategia de inversión?",
			QuestionDecrease: "¿Se han liquidado inversiones? ¿Cuál fue el resultado obtenido?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"fianza", "depósito", "garantía"},
			CodePrefixes:     []string{"260", "261", "265", "266", "269"},
			QuestionIncrease: "¿Se han constituido nuevas fianzas o depósitos? ¿Por qué concepto?",
			QuestionDecrease: "¿Se han recuperado fianzas o depósitos? ¿Ha finalizado la obligación garantizada?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"amortizaci", "depreciación"},
			CodePrefixes:     []string{"280", "281", "282", "283", "284"},
			QuestionIncrease: "¿El incremento de amortización corresponde a la dotación anual normal? ¿Se han revisado vidas útiles?",
			QuestionDecrease: "¿Se ha reducido la amortización por bajas de activos? Por favor confirme las bajas realizadas.",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"deterioro", "provisión.*por.*depreciación"},
			CodePrefixes:     []string{"290", "291", "292", "293", "294", "295", "296", "297", "298", "299"},
			QuestionIncrease: "¿Se ha registrado deterioro de valor? ¿Qué activos han sido afectados y por qué motivo?",
			QuestionDecrease: "¿Se ha revertido deterioro de valor? ¿Ha mejorado el valor recuperable del activo?",
			Weight:           3,
		},
	)

	// Grupo 3: existencias
	rules = append(rules,
		Rule{
			Patterns:         []string{"mercader", "mercancía", "producto.*terminado", "stock"},
			CodePrefixes:     []string{"300", "301", "302", "303", "304", "305", "306", "307", "308", "309"},
			QuestionIncrease: "¿Ha aumentado el inventario de mercaderías? ¿Se debe a mayor actividad o acumulación de stock?",
			QuestionDecrease: "¿Ha disminuido el inventario? ¿Por ventas, mermas o deterioro?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"materia.*prima", "materiales", "aprovisionamiento"},
			CodePrefixes:     []string{"310", "311", "312", "313", "314", "315", "316", "317", "318", "319"},
			QuestionIncrease: "¿Se ha incrementado el stock de materias primas? ¿Por anticipación de producción o precios?",
			QuestionDecrease: "¿Ha disminuido el inventario de materias primas? ¿Por consumo productivo o deterioro?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"combustible", "repuesto", "embalaje", "envase", "material.*diverso"},
			CodePrefixes:     []string{"320", "321", "322", "323", "324", "325", "326", "327", "328", "329"},
			QuestionIncrease: "¿Se ha incrementado el stock de otros aprovisionamientos? ¿Por qué concepto?",
			QuestionDecrease: "¿Ha disminuido el inventario de aprovisionamientos? ¿Por consumo o deterioro?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"producto.*en.*curso", "fabricación", "semiterminado", "WIP"},
			CodePrefixes:     []string{"330", "331", "332", "333", "334", "335", "336"},
			QuestionIncrease: "¿Ha aumentado el producto en curso? ¿Hay retrasos en la producción?",
			QuestionDecrease: "¿Ha disminuido el producto en curso? ¿Se ha completado la producción?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"producto.*terminado", "acabado", "almacén.*producto"},
			CodePrefixes:     []string{"350", "351", "352", "353", "354", "355", "356"},
			QuestionIncrease: "¿Ha aumentado el stock de productos terminados? ¿Hay problemas de ventas o es por estacionalidad?",
			QuestionDecrease: "¿Ha disminuido el inventario? ¿Las ventas han sido mayores a la producción?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"subproducto", "residuo", "recuperación", "material.*recuperado"},
			CodePrefixes:     []string{"360", "361", "362", "363", "364", "365", "366", "367", "368", "369"},
			QuestionIncrease: "¿Se han generado más subproductos? ¿Existe mercado para su venta?",
			QuestionDecrease: "¿Se han vendido subproductos o eliminado residuos?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"deterioro.*existencia", "obsolescencia", "depreciación.*stock"},
			CodePrefixes:     []string{"390", "391", "392", "393", "394", "395", "396"},
			QuestionIncrease: "¿Se ha dotado provisión por deterioro de existencias? ¿Qué productos están afectados?",
			QuestionDecrease: "¿Se ha revertido o aplicado provisión de existencias? ¿Se han vendido o dado de baja?",
			Weight:           3,
		},
	)

	// Grupo 4: acreedores y deudores
	rules = append(rules,
		Rule{
			Patterns:         []string{"proveedor", "acreedor.*comercial", "cuenta.*por.*pagar"},
			CodePrefixes:     []string{"400", "401", "402", "403", "404", "405", "406", "407"},
			QuestionIncrease: "¿Ha aumentado el saldo con proveedores? ¿Se han extendido los plazos de pago o hay más compras?",
			QuestionDecrease: "¿Se han pagado proveedores? ¿Se han obtenido descuentos por pronto pago?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"efecto", "pagaré", "letra"},
			CodePrefixes:     []string{"401"},
			QuestionIncrease: "¿Se han aceptado nuevos efectos comerciales? ¿Cuáles son los vencimientos?",
			QuestionDecrease: "¿Se han pagado efectos comerciales a su vencimiento?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"acreedor", "cuenta.*por.*pagar", "terceros"},
			CodePrefixes:     []string{"410", "411", "412", "419"},
			QuestionIncrease: "¿Han aumentado las cuentas por pagar a acreedores? ¿Por qué concepto?",
			QuestionDecrease: "¿Se han liquidado deudas con acreedores? Por favor especifique.",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"cliente", "cuenta.*por.*cobrar", "deudor.*comercial"},
			CodePrefixes:     []string{"430", "431", "432", "433", "434", "435", "436", "437"},
			QuestionIncrease: "¿Ha aumentado el saldo de clientes? ¿Por mayores ventas o retrasos en cobro?",
			QuestionDecrease: "¿Se han cobrado clientes? ¿Se han dado de baja créditos incobrables?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"efecto.*a.*cobrar", "letra.*a.*cobrar", "pagaré.*recibido"},
			CodePrefixes:     []string{"431"},
			QuestionIncrease: "¿Se han recibido nuevos efectos de clientes? ¿Cuáles son los vencimientos?",
			QuestionDecrease: "¿Se han cobrado efectos comerciales? ¿Hubo algún impagado?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"deudor", "anticipos", "cuenta.*por.*cobrar"},
			CodePrefixes:     []string{"440", "441", "449"},
			QuestionIncrease: "¿Han aumentado los deudores varios? ¿Por qué concepto?",
			QuestionDecrease: "¿Se han cobrado deudores? Por favor especifique la naturaleza.",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"personal", "empleado", "anticipo.*personal", "remuneración.*pendiente"},
			CodePrefixes:     []string{"460", "465", "466"},
			QuestionIncrease: "¿Han aumentado los saldos con personal? ¿Por anticipos o remuneraciones pendientes?",
			QuestionDecrease: "¿Se han liquidado cuentas con personal? Por favor detalle.",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"hacienda", "administración.*pública", "IVA", "impuesto", "IRPF", "seguridad.*social"},
			CodePrefixes:     []string{"470", "471", "472", "473", "474", "475", "476", "477", "479"},
			QuestionIncrease: "¿Han aumentado los saldos con Hacienda? ¿Por qué impuesto o concepto?",
			QuestionDecrease: "¿Se han pagado o compensado saldos con administraciones públicas?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"deterioro.*crédito", "insolvencia", "moroso", "incobrable"},
			CodePrefixes:     []string{"490", "493", "494", "495", "496", "499"},
			QuestionIncrease: "¿Se ha dotado provisión por insolvencia? ¿Qué clientes están en situación de riesgo?",
			QuestionDecrease: "¿Se ha revertido o aplicado provisión por insolvencia? ¿Se han recuperado o dado de baja créditos?",
			Weight:           3,
		},
	)

	// Grupo 5: cuentas financieras
	rules = append(rules,
		Rule{
			Patterns:         []string{"préstamo.*grupo", "deuda.*grupo", "obligación.*grupo"},
			CodePrefixes:     []string{"500", "501", "502", "503", "504", "505", "506", "507", "508", "509"},
			QuestionIncrease: "¿Se ha obtenido financiación del grupo a corto plazo? ¿Cuáles son las condiciones?",
			QuestionDecrease: "¿Se han amortizado deudas con empresas del grupo?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"préstamo.*corto", "póliza.*crédito", "crédito.*bancario", "línea.*crédito"},
			CodePrefixes:     []string{"520", "521", "522", "523", "524", "525", "526", "527", "528", "529"},
			QuestionIncrease: "¿Se ha dispuesto de financiación bancaria a corto plazo? ¿Para qué necesidad?",
			QuestionDecrease: "¿Se ha amortizado deuda bancaria a corto plazo? ¿Con qué fondos?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"inversión.*grupo.*CP", "préstamo.*a.*grupo", "crédito.*grupo"},
			CodePrefixes:     []string{"530", "531", "532", "533", "534", "535", "536", "537", "538", "539"},
			QuestionIncrease: "¿Se han realizado inversiones en empresas del grupo a corto plazo?",
			QuestionDecrease: "¿Se han recuperado préstamos a empresas del grupo?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"inversión.*temporal", "depósito.*plazo", "valores.*CP"},
			CodePrefixes:     []string{"540", "541", "542", "543", "544", "545", "546", "547", "548", "549"},
			QuestionIncrease: "¿Se han realizado inversiones financieras temporales? ¿Cuál es el objetivo?",
			QuestionDecrease: "¿Se han liquidado inversiones temporales? ¿Cuál fue el rendimiento obtenido?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"cuenta.*corriente.*socio", "dividendo", "cuenta.*partícipe"},
			CodePrefixes:     []string{"550", "551", "552", "553", "554", "555", "556", "557", "558", "559"},
			QuestionIncrease: "¿Han aumentado los saldos con socios o partícipes? ¿Por qué concepto?",
			QuestionDecrease: "¿Se han liquidado cuentas con socios? ¿Se han pagado dividendos?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"fianza.*CP", "depósito.*CP", "garantía.*corto"},
			CodePrefixes:     []string{"560", "561", "565", "566", "569"},
			QuestionIncrease: "¿Se han constituido o recibido nuevas fianzas a corto plazo? ¿Por qué concepto?",
			QuestionDecrease: "¿Se han devuelto o recuperado fianzas? ¿Ha finalizado la obligación?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"caja", "banco", "tesorería", "efectivo", "cuenta.*corriente"},
			CodePrefixes:     []string{"570", "571", "572", "573", "574", "575", "576"},
			QuestionIncrease: "¿Ha aumentado la tesorería? ¿Por cobros, financiación o desinversiones?",
			QuestionDecrease: "¿Ha disminuido la tesorería? ¿Por pagos operativos, inversiones o financiación?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"deterioro.*inversión.*CP", "provisión.*valores"},
			CodePrefixes:     []string{"590", "591", "592", "593", "594", "595", "596", "597", "598", "599"},
			QuestionIncrease: "¿Se ha dotado deterioro de inversiones financieras? ¿Qué valores están afectados?",
			QuestionDecrease: "¿Se ha revertido deterioro de inversiones? ¿Ha mejorado el valor de mercado?",
			Weight:           3,
		},
	)

	// Grupo 6: compras y gastos
	rules = append(rules,
		Rule{
			Patterns:         []string{"compra.*mercader", "aprovisionamiento", "coste.*mercancía"},
			CodePrefixes:     []string{"600"},
			QuestionIncrease: "¿Han aumentado las compras de mercaderías? ¿Por mayor volumen de ventas o incremento de precios?",
			QuestionDecrease: "¿Han disminuido las compras? ¿Por menor actividad o cambio de proveedores?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"compra.*materia.*prima", "coste.*material", "aprovision"},
			CodePrefixes:     []string{"601"},
			QuestionIncrease: "¿Han aumentado las compras de materias primas? ¿Por mayor producción o subida de precios?",
			QuestionDecrease: "¿Han disminuido las compras de materias primas? ¿Por menor producción o eficiencias?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"otro.*aprovision", "consumible", "material.*auxiliar"},
			CodePrefixes:     []string{"602"},
			QuestionIncrease: "¿Han aumentado otros aprovisionamientos? ¿Por qué concepto?",
			QuestionDecrease: "¿Han disminuido otros aprovisionamientos? ¿Se han conseguido eficiencias?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"descuento.*compra", "rappel", "bonificación.*proveedor"},
			CodePrefixes:     []string{"606", "607", "608", "609"},
			QuestionIncrease: "¿Se han obtenido más descuentos de proveedores? ¿Por qué concepto?",
			QuestionDecrease: "¿Han disminuido los descuentos? ¿Se han renegociado condiciones con proveedores?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"variación.*existencia", "variación.*stock", "diferencia.*inventario"},
			CodePrefixes:     []string{"610", "611", "612"},
			QuestionIncrease: "¿La variación de existencias refleja una disminución de stock? ¿Por consumo o mermas?",
			QuestionDecrease: "¿La variación negativa indica aumento de stock? ¿Por acumulación de inventario?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"alquiler", "arrendamiento", "renting", "leasing.*operativo"},
			CodePrefixes:     []string{"621"},
			QuestionIncrease: "¿Han aumentado los gastos de alquiler? ¿Por nuevos contratos o subidas de renta?",
			QuestionDecrease: "¿Han disminuido los alquileres? ¿Se han rescindido contratos o renegociado rentas?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"reparación", "mantenimiento", "conservación"},
			CodePrefixes:     []string{"622"},
			QuestionIncrease: "¿Han aumentado los gastos de mantenimiento? ¿Por reparaciones extraordinarias o contratos nuevos?",
			QuestionDecrease: "¿Han disminuido los gastos de mantenimiento? ¿Se han renegociado contratos o menos averías?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"profesional", "consultor", "asesor", "abogado", "auditor", "honorario"},
			CodePrefixes:     []string{"623"},
			QuestionIncrease: "¿Han aumentado los servicios profesionales? ¿Por qué tipo de asesoramiento?",
			QuestionDecrease: "¿Han disminuido los servicios externos? ¿Se han internalizado funciones?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"transporte", "porte", "flete", "logística", "envío"},
			CodePrefixes:     []string{"624"},
			QuestionIncrease: "¿Han aumentado los gastos de transporte? ¿Por mayor volumen o subida de tarifas?",
			QuestionDecrease: "¿Han disminuido los transportes? ¿Por eficiencias logísticas o menor actividad?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"seguro", "prima", "póliza.*seguro"},
			CodePrefixes:     []string{"625"},
			QuestionIncrease: "¿Han aumentado las primas de seguros? ¿Por nuevas coberturas o subida de tarifas?",
			QuestionDecrease: "¿Han disminuido los seguros? ¿Se han eliminado coberturas o renegociado primas?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"comisión.*banco", "servicio.*bancario", "gastos.*financieros.*menores"},
			CodePrefixes:     []string{"626"},
			QuestionIncrease: "¿Han aumentado los gastos bancarios? ¿Por qué servicios o comisiones?",
			QuestionDecrease: "¿Han disminuido los gastos bancarios? ¿Se han renegociado comisiones?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"publicidad", "marketing", "promoción", "campaña", "patrocinio"},
			CodePrefixes:     []string{"627"},
			QuestionIncrease: "¿Ha aumentado la inversión en publicidad? ¿Para qué campañas o productos?",
			QuestionDecrease: "¿Ha disminuido el gasto en marketing? ¿Se ha reducido la inversión comercial?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"suministro", "electricidad", "agua", "gas", "teléfono", "internet"},
			CodePrefixes:     []string{"628"},
			QuestionIncrease: "¿Han aumentado los suministros? ¿Por subida de tarifas o mayor consumo?",
			QuestionDecrease: "¿Han disminuido los suministros? ¿Por ahorro energético o cambio de proveedor?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"otro.*servicio", "viaje", "dieta", "formación", "suscripción"},
			CodePrefixes:     []string{"629"},
			QuestionIncrease: "¿Han aumentado otros servicios? ¿Por qué concepto específico?",
			QuestionDecrease: "¿Han disminuido otros servicios? ¿Se han eliminado gastos no esenciales?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"tributo", "impuesto.*local", "IBI", "IAE", "tasa"},
			CodePrefixes:     []string{"630", "631", "634", "636", "639"},
			QuestionIncrease: "¿Han aumentado los tributos? ¿Por nuevas obligaciones o subida de tipos?",
			QuestionDecrease: "¿Han disminuido los tributos? ¿Por bonificaciones o reducción de base?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"sueldo", "salario", "nómina", "retribución"},
			CodePrefixes:     []string{"640"},
			QuestionIncrease: "¿Han aumentado los sueldos? ¿Por nuevas contrataciones, subidas salariales o bonus?",
			QuestionDecrease: "¿Han disminuido los sueldos? ¿Por despidos, jubilaciones o reducción de plantilla?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"indemnización", "despido", "finiquito", "prejubilación"},
			CodePrefixes:     []string{"641"},
			QuestionIncrease: "¿Se han pagado indemnizaciones? ¿Por despidos, ERE o prejubilaciones?",
			QuestionDecrease: "¿Han disminuido las indemnizaciones respecto al periodo anterior?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"seguridad.*social", "cotización.*social", "cuota.*patronal"},
			CodePrefixes:     []string{"642"},
			QuestionIncrease: "¿Ha aumentado la Seguridad Social? ¿Por más plantilla o subida de bases?",
			QuestionDecrease: "¿Ha disminuido la Seguridad Social? ¿Por reducciones de plantilla o bonificaciones?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"retribución.*LP", "plan.*pensiones", "compromiso.*personal"},
			CodePrefixes:     []string{"643"},
			QuestionIncrease: "¿Se han incrementado compromisos de retribución a largo plazo? ¿Planes de pensiones?",
			QuestionDecrease: "¿Han disminuido los compromisos a largo plazo? ¿Por qué concepto?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"stock.*option", "retribución.*acciones", "phantom.*shares"},
			CodePrefixes:     []string{"644"},
			QuestionIncrease: "¿Se han concedido planes de retribución en acciones? ¿A qué colectivo?",
			QuestionDecrease: "¿Han vencido o cancelado planes de retribución en acciones?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"gasto.*social", "formación", "comedor", "beneficio.*social"},
			CodePrefixes:     []string{"649"},
			QuestionIncrease: "¿Han aumentado los gastos sociales? ¿Por qué conceptos (formación, beneficios)?",
			QuestionDecrease: "¿Han disminuido los gastos sociales? ¿Se han reducido beneficios al personal?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"pérdida.*crédito", "crédito.*incobrable", "insolvencia"},
			CodePrefixes:     []string{"650"},
			QuestionIncrease: "¿Se han registrado pérdidas por créditos incobrables? ¿Qué clientes están afectados?",
			QuestionDecrease: "¿Han disminuido las pérdidas por créditos? ¿Se ha mejorado la gestión de cobro?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"otro.*gasto.*gestión", "resultado.*enajenación", "gasto.*excepcional"},
			CodePrefixes:     []string{"651", "659"},
			QuestionIncrease: "¿Han aumentado otros gastos de gestión? ¿Por qué concepto específico?",
			QuestionDecrease: "¿Han disminuido otros gastos de gestión?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"interés", "gasto.*financiero", "comisión.*financiera", "diferencia.*cambio.*negativa"},
			CodePrefixes:     []string{"661", "662", "663", "664", "665", "666", "667", "668", "669"},
			QuestionIncrease: "¿Han aumentado los gastos financieros? ¿Por más deuda, subida de tipos o diferencias de cambio?",
			QuestionDecrease: "¿Han disminuido los gastos financieros? ¿Por amortización de deuda o bajada de tipos?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"pérdida.*financiera", "deterioro.*participación", "pérdida.*inversión"},
			CodePrefixes:     []string{"670", "671", "672", "673", "675", "676", "677", "678", "679"},
			QuestionIncrease: "¿Se han registrado pérdidas en instrumentos financieros? ¿Por qué inversiones?",
			QuestionDecrease: "¿Han disminuido las pérdidas financieras respecto al periodo anterior?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"amortización", "depreciación.*anual"},
			CodePrefixes:     []string{"680", "681", "682"},
			QuestionIncrease: "¿Ha aumentado la amortización? ¿Por nuevas inversiones o revisión de vidas útiles?",
			QuestionDecrease: "¿Ha disminuido la amortización? ¿Por activos totalmente amortizados o bajas?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"pérdida.*deterioro", "provisión.*deterioro", "corrección.*valorativa"},
			CodePrefixes:     []string{"690", "691", "692", "693", "694", "695", "696", "697", "698", "699"},
			QuestionIncrease: "¿Se ha dotado deterioro de activos? ¿Qué elementos están afectados?",
			QuestionDecrease: "¿Se ha revertido deterioro? ¿Ha mejorado el valor recuperable?",
			Weight:           3,
		},
	)

	// Grupo 7: ventas e ingresos
	rules = append(rules,
		Rule{
			Patterns:         []string{"venta.*mercader", "ingreso.*comercial", "facturación.*producto"},
			CodePrefixes:     []string{"700"},
			QuestionIncrease: "¿Han aumentado las ventas de mercaderías? ¿Por volumen, precio o nuevos clientes?",
			QuestionDecrease: "¿Han disminuido las ventas? ¿Por pérdida de clientes, competencia o estacionalidad?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"venta.*producto", "facturación.*producción"},
			CodePrefixes:     []string{"701"},
			QuestionIncrease: "¿Han aumentado las ventas de productos? ¿Por mayor producción o nuevos productos?",
			QuestionDecrease: "¿Han disminuido las ventas de productos? ¿Por menor demanda o discontinuación?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"venta.*semiterminado", "venta.*residuo", "venta.*subproducto"},
			CodePrefixes:     []string{"702", "703"},
			QuestionIncrease: "¿Han aumentado las ventas de semiterminados o residuos? ¿Hay nuevos canales?",
			QuestionDecrease: "¿Han disminuido estas ventas? ¿Se han eliminado canales de comercialización?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"servicio", "prestación", "consultoría", "asesoramiento", "trabajo.*realizado"},
			CodePrefixes:     []string{"705"},
			QuestionIncrease: "¿Han aumentado los ingresos por servicios? ¿Por nuevos contratos o subida de tarifas?",
			QuestionDecrease: "¿Han disminuido los servicios? ¿Por finalización de contratos o pérdida de clientes?",
			Weight:           3,
		},
		Rule{
			Patterns:         []string{"descuento.*venta", "rappel.*cliente", "bonificación", "devolución"},
			CodePrefixes:     []string{"706", "707", "708", "709"},
			QuestionIncrease: "¿Han aumentado los descuentos a clientes? ¿Por campañas promocionales o devoluciones?",
			QuestionDecrease: "¿Han disminuido los descuentos? ¿Se han reducido las promociones?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"variación.*existencia.*producto", "variación.*fabricación"},
			CodePrefixes:     []string{"710", "711", "712", "713"},
			QuestionIncrease: "¿La variación positiva indica aumento de inventario de productos?",
			QuestionDecrease: "¿La variación negativa indica reducción de inventario de productos?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"trabajo.*propio", "activación.*gasto", "inmovilizado.*fabricación.*propia"},
			CodePrefixes:     []string{"730", "731", "732", "733"},
			QuestionIncrease: "¿Se han activado trabajos realizados para el inmovilizado propio? ¿Qué proyectos?",
			QuestionDecrease: "¿Han disminuido los trabajos para inmovilizado propio? ¿Se han finalizado proyectos?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"subvención", "donación", "legado", "ayuda.*pública"},
			CodePrefixes:     []string{"740", "746", "747"},
			QuestionIncrease: "¿Se han recibido subvenciones o donaciones? ¿De qué organismo y para qué fin?",
			QuestionDecrease: "¿Han disminuido las subvenciones? ¿Se han devuelto o no renovado ayudas?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"ingreso.*accesorio", "comisión", "royalty", "propiedad.*industrial"},
			CodePrefixes:     []string{"751", "752", "753", "754", "755", "759"},
			QuestionIncrease: "¿Han aumentado otros ingresos de gestión? ¿Por qué concepto?",
			QuestionDecrease: "¿Han disminuido otros ingresos de gestión? ¿Se han perdido fuentes de ingreso?",
			Weight:           1,
		},
		Rule{
			Patterns:         []string{"ingreso.*financiero", "interés.*cobrado", "dividendo", "diferencia.*cambio.*positiva"},
			CodePrefixes:     []string{"760", "761", "762", "763", "764", "765", "766", "767", "768", "769"},
			QuestionIncrease: "¿Han aumentado los ingresos financieros? ¿Por mayores inversiones, tipos o dividendos?",
			QuestionDecrease: "¿Han disminuido los ingresos financieros? ¿Por desinversiones o bajada de tipos?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"beneficio.*financiero", "plusvalía", "ganancia.*inversión"},
			CodePrefixes:     []string{"770", "771", "772", "773", "774", "775", "776", "777", "778", "779"},
			QuestionIncrease: "¿Se han registrado beneficios por inversiones? ¿Qué instrumentos se han vendido?",
			QuestionDecrease: "¿Han disminuido los beneficios financieros respecto al periodo anterior?",
			Weight:           2,
		},
		Rule{
			Patterns:         []string{"reversión", "recuperación.*deterioro"},
			CodePrefixes:     []string{"790", "791", "792", "793", "794", "795", "796", "797", "798", "799"},
			QuestionIncrease: "¿Se ha revertido deterioro de activos? ¿Qué elementos han recuperado valor?",
			QuestionDecrease: "¿Ha disminuido la reversión de deterioros?",
			Weight:           2,
		},
	)

	// Reglas genéricas por grupo
	rules = append(rules,
		Rule{
			CodePrefixes:     []string{"1"},
			QuestionIncrease: "¿Cuál es el origen del incremento en esta partida de financiación?",
			QuestionDecrease: "¿Por qué ha disminuido esta partida de financiación?",
		},
		Rule{
			CodePrefixes:     []string{"2"},
			QuestionIncrease: "¿Se han realizado inversiones en esta partida de inmovilizado? Por favor detalle.",
			QuestionDecrease: "¿Ha habido bajas o deterioro en esta partida de inmovilizado? Por favor detalle.",
		},
		Rule{
			CodePrefixes:     []string{"3"},
			QuestionIncrease: "¿Ha aumentado el nivel de inventario? ¿Por qué razón?",
			QuestionDecrease: "¿Ha disminuido el inventario? ¿Por ventas, consumo o deterioro?",
		},
		Rule{
			CodePrefixes:     []string{"4"},
			QuestionIncrease: "¿Cuál es el origen del incremento en esta cuenta? Por favor detalle.",
			QuestionDecrease: "¿Por qué ha disminuido el saldo de esta cuenta?",
		},
		Rule{
			CodePrefixes:     []string{"5"},
			QuestionIncrease: "¿Cuál es el origen del incremento en esta partida financiera?",
			QuestionDecrease: "¿Por qué ha disminuido esta partida financiera?",
		},
		Rule{
			CodePrefixes:     []string{"6"},
			QuestionIncrease: "¿Por qué han aumentado estos gastos? Por favor justifique el incremento.",
			QuestionDecrease: "¿A qué se debe la reducción de estos gastos?",
		},
		Rule{
			CodePrefixes:     []string{"7"},
			QuestionIncrease: "¿Cuál es el origen del incremento en estos ingresos?",
			QuestionDecrease: "¿Por qué han disminuido estos ingresos? Por favor explique.",
		},
	)

	return rules
}
